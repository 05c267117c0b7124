// Copyright 2024 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package imds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsDocument = `{
  "Code" : "Success",
  "LastUpdated" : "2023-01-01T00:00:00Z",
  "Type" : "AWS-HMAC",
  "AccessKeyId" : "AKIAEXAMPLE",
  "SecretAccessKey" : "secret",
  "Token" : "tok",
  "Expiration" : "2023-01-01T06:00:00Z"
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClientWithHTTPClient(log.NewMockLog(), server.URL+"/latest/meta-data/", server.Client(), 4096)
	return server, client
}

func TestClient_GetCredentials(t *testing.T) {
	var requestedPath, agent string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		agent = r.UserAgent()
		_, _ = w.Write([]byte(credentialsDocument))
	})

	body, err := client.GetCredentials(context.Background(), "S3FileServer")

	require.NoError(t, err)
	assert.Equal(t, credentialsDocument, string(body))
	assert.Equal(t, "/latest/meta-data/iam/security-credentials/S3FileServer", requestedPath)
	assert.Equal(t, userAgent, agent)
}

func TestClient_GetCredentials_NonSuccessStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	body, err := client.GetCredentials(context.Background(), "missing")

	assert.Nil(t, body)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "404")
}

func TestClient_GetCredentials_OversizedBody(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 8192)))
	})

	body, err := client.GetCredentials(context.Background(), "S3FileServer")

	assert.Nil(t, body)
	assert.True(t, errors.Is(err, ErrBufferExhausted))
}

func TestClient_GetCredentials_ContextCancelled(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetCredentials(ctx, "S3FileServer")

	assert.Error(t, err)
}

func TestClient_GetCredentials_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	client := NewClientWithHTTPClient(log.NewMockLog(), url+"/", &http.Client{Timeout: time.Second}, 0)

	_, err := client.GetCredentials(context.Background(), "S3FileServer")

	assert.Error(t, err)
}

func TestClient_Region(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/latest/meta-data/placement/availability-zone" {
			_, _ = w.Write([]byte("us-west-2b"))
			return
		}
		http.NotFound(w, r)
	})

	region, err := client.Region(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", region)
}

func TestNewClient_FromConfig(t *testing.T) {
	config := appconfig.DefaultConfig().Imds

	client := NewClient(log.NewMockLog(), config)

	assert.Equal(t, appconfig.DefaultMetadataURL, client.BaseURL())
	assert.Equal(t, time.Duration(appconfig.DefaultRequestTimeoutSeconds)*time.Second, client.httpClient.Timeout)
	assert.Equal(t, appconfig.DefaultMaxResponseBytes, client.maxResponseBytes)
}
