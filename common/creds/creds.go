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

// Package creds defines the credential snapshot handed to request signers and
// adapts its source to the aws-sdk-go credentials interfaces.
package creds

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
)

// Snapshot is one complete set of role credentials. The store only ever
// publishes snapshots with every field set; a newer refresh replaces the
// snapshot rather than changing it. Readers receive copies.
type Snapshot struct {
	LastUpdated     string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      string

	LastUpdatedAt time.Time
	ExpiresAt     time.Time
	// RetrievedAt is the local time the snapshot was fetched.
	RetrievedAt time.Time
}

// Source returns the current snapshot, refreshing it first if it is due.
type Source interface {
	Retrieve(ctx context.Context) (Snapshot, error)
}

// Value converts the snapshot to the aws-sdk-go credential value.
func (s Snapshot) Value(providerName string) credentials.Value {
	return credentials.Value{
		AccessKeyID:     s.AccessKeyID,
		SecretAccessKey: s.SecretAccessKey,
		SessionToken:    s.SessionToken,
		ProviderName:    providerName,
	}
}

// String never prints the secret key or the session token.
func (s Snapshot) String() string {
	return fmt.Sprintf("{AccessKeyID: %s, LastUpdated: %s, Expiration: %s}", RedactKeyID(s.AccessKeyID), s.LastUpdated, s.Expiration)
}

// RedactKeyID keeps only the last four characters of an access key id.
func RedactKeyID(keyID string) string {
	if len(keyID) <= 4 {
		return "****"
	}
	return "****" + keyID[len(keyID)-4:]
}
