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

package sdkutil

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/stretchr/testify/assert"
)

func TestAwsConfig(t *testing.T) {
	creds := credentials.NewStaticCredentials("AKID", "SECRET", "TOKEN")

	config := AwsConfig("us-west-2", creds)

	assert.Equal(t, "us-west-2", aws.StringValue(config.Region))
	assert.Same(t, creds, config.Credentials)
	assert.Equal(t, defaultMaxRetries, aws.IntValue(config.MaxRetries))
	assert.Equal(t, defaultHTTPTimeout, config.HTTPClient.Timeout)
}

func TestGetAwsErrorCode(t *testing.T) {
	assert.Equal(t, "EC2RoleRequestError", GetAwsErrorCode(awserr.New("EC2RoleRequestError", "failed", nil)))
	assert.Equal(t, "", GetAwsErrorCode(errors.New("plain")))
	assert.Equal(t, "", GetAwsErrorCode(nil))
}
