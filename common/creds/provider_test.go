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

package creds_test

import (
	"errors"
	"testing"
	"time"

	"github.com/s3fileserver/s3-credential-agent/common/creds"
	"github.com/s3fileserver/s3-credential-agent/common/creds/mocks"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSnapshot(expiresAt time.Time) creds.Snapshot {
	return creds.Snapshot{
		LastUpdated:     "2023-01-01T00:00:00Z",
		AccessKeyID:     "ASIAEXAMPLEKEY1",
		SecretAccessKey: "secret",
		SessionToken:    "tok",
		Expiration:      expiresAt.UTC().Format("2006-01-02T15:04:05Z"),
		ExpiresAt:       expiresAt,
	}
}

func TestProvider_Retrieve(t *testing.T) {
	source := &mocks.Source{}
	snapshot := testSnapshot(time.Now().Add(time.Hour))
	source.On("Retrieve", mock.Anything).Return(snapshot, nil).Once()

	provider := creds.NewProvider(source, time.Minute)
	value, err := provider.Retrieve()

	require.NoError(t, err)
	assert.Equal(t, credentials.Value{
		AccessKeyID:     "ASIAEXAMPLEKEY1",
		SecretAccessKey: "secret",
		SessionToken:    "tok",
		ProviderName:    creds.ProviderName,
	}, value)
	assert.False(t, provider.IsExpired())
	assert.Equal(t, snapshot.ExpiresAt.Add(-time.Minute), provider.ExpiresAt())
	source.AssertExpectations(t)
}

func TestProvider_ExpiredWithinWindow(t *testing.T) {
	source := &mocks.Source{}
	source.On("Retrieve", mock.Anything).Return(testSnapshot(time.Now().Add(30*time.Second)), nil)

	provider := creds.NewProvider(source, time.Minute)
	_, err := provider.Retrieve()

	require.NoError(t, err)
	assert.True(t, provider.IsExpired())
}

func TestProvider_RetrieveError(t *testing.T) {
	source := &mocks.Source{}
	cause := errors.New("credentials unavailable")
	source.On("Retrieve", mock.Anything).Return(creds.Snapshot{}, cause)

	provider := creds.NewProvider(source, time.Minute)
	value, err := provider.Retrieve()

	require.Error(t, err)
	awsErr, ok := err.(awserr.Error)
	require.True(t, ok)
	assert.Equal(t, creds.ErrCodeRoleRequestError, awsErr.Code())
	assert.Equal(t, cause, awsErr.OrigErr())
	assert.False(t, value.HasKeys())
	assert.Equal(t, creds.ProviderName, value.ProviderName)
}

func TestNewCredentials_Get(t *testing.T) {
	source := &mocks.Source{}
	source.On("Retrieve", mock.Anything).Return(testSnapshot(time.Now().Add(time.Hour)), nil).Once()

	credentials := creds.NewCredentials(source, time.Minute)

	first, err := credentials.Get()
	require.NoError(t, err)
	second, err := credentials.Get()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	source.AssertNumberOfCalls(t, "Retrieve", 1)
}

func TestSnapshot_StringRedactsSecrets(t *testing.T) {
	snapshot := testSnapshot(time.Date(2023, time.January, 1, 1, 0, 0, 0, time.UTC))

	text := snapshot.String()

	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "tok")
	assert.Contains(t, text, "****KEY1")
	assert.Contains(t, text, "2023-01-01T01:00:00Z")
}

func TestRedactKeyID(t *testing.T) {
	assert.Equal(t, "****", creds.RedactKeyID(""))
	assert.Equal(t, "****", creds.RedactKeyID("ABCD"))
	assert.Equal(t, "****BCDE", creds.RedactKeyID("ABCDE"))
}
