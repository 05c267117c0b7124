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

// Package sdkutil provides utilities used to call awssdk.
package sdkutil

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

const (
	defaultMaxRetries  = 3
	defaultHTTPTimeout = 30 * time.Second
)

// AwsConfig returns the aws.Config an S3 client in region uses to sign with
// the given credentials.
func AwsConfig(region string, creds *credentials.Credentials) *aws.Config {
	return &aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
		MaxRetries:  aws.Int(defaultMaxRetries),
		SleepDelay:  sleepDelay,
		HTTPClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}
}

var sleepDelay = func(d time.Duration) {
	time.Sleep(d)
}
