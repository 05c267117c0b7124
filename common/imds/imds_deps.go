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
	"errors"
)

const (
	// IamRoleCredentialsOffset is appended to the meta-data base to reach the
	// temporary credentials of a role.
	IamRoleCredentialsOffset = "iam/security-credentials/"

	// AvailabilityZoneOffset is appended to the meta-data base to reach the
	// placement availability zone of the instance.
	AvailabilityZoneOffset = "placement/availability-zone"

	userAgent = "s3-credential-agent/1.0"
)

var (
	// ErrBufferExhausted is returned when a response body outgrows the buffer limit.
	ErrBufferExhausted = errors.New("response buffer limit exceeded")

	// ErrUnexpectedStatus is returned for any non-200 metadata response.
	ErrUnexpectedStatus = errors.New("unexpected metadata service status")
)
