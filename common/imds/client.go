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

// Package imds reads IAM role credentials and placement data from the EC2
// instance metadata service.
package imds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"

	"golang.org/x/net/context/ctxhttp"
)

// Client issues GET requests against the metadata service.
type Client struct {
	log              log.T
	baseURL          string
	httpClient       *http.Client
	maxResponseBytes int
}

// NewClient creates a Client from the IMDS section of the agent config.
func NewClient(log log.T, config appconfig.ImdsCfg) *Client {
	httpClient := &http.Client{
		Timeout: time.Duration(config.RequestTimeoutSeconds) * time.Second,
	}
	return NewClientWithHTTPClient(log, config.MetadataURL, httpClient, config.MaxResponseBytes)
}

// NewClientWithHTTPClient creates a Client that sends requests through httpClient.
func NewClientWithHTTPClient(log log.T, baseURL string, httpClient *http.Client, maxResponseBytes int) *Client {
	return &Client{
		log:              log.WithContext("[MetadataClient]"),
		baseURL:          baseURL,
		httpClient:       httpClient,
		maxResponseBytes: maxResponseBytes,
	}
}

// BaseURL returns the meta-data base the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetCredentials fetches the raw credentials document for role.
func (c *Client) GetCredentials(ctx context.Context, role string) ([]byte, error) {
	return c.Get(ctx, CredentialsURL(c.baseURL, role))
}

// Region derives the instance region from its availability zone.
func (c *Client) Region(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, AvailabilityZoneURL(c.baseURL))
	if err != nil {
		return "", err
	}
	region := RegionFromAvailabilityZone(string(body))
	if region == "" {
		return "", fmt.Errorf("metadata service returned an empty availability zone")
	}
	return region, nil
}

// Get reads url into a ResponseBuffer. The body is never logged since it may
// carry secrets.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.log.Debugf("Requesting %s", url)
	resp, err := ctxhttp.Do(ctx, c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("metadata request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	buffer := NewResponseBuffer(c.maxResponseBytes)
	if _, err = io.Copy(buffer, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read metadata response from %s: %w", url, err)
	}

	body := buffer.Finalize()
	c.log.Debugf("Received %d bytes from %s", len(body), url)
	return body, nil
}
