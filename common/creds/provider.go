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

package creds

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

const (
	// ProviderName is reported in credentials.Value.ProviderName.
	ProviderName = "S3CredentialAgentProvider"

	// ErrCodeRoleRequestError is the awserr code of a failed retrieval.
	ErrCodeRoleRequestError = "EC2RoleRequestError"
)

// Provider lets aws-sdk-go clients sign with the snapshots of a Source.
// It satisfies credentials.ProviderWithContext and credentials.Expirer.
type Provider struct {
	credentials.Expiry

	// ExpiryWindow makes IsExpired report true this long before the snapshot
	// actually expires, so the SDK asks again before the store's policy
	// would hand out credentials close to expiry.
	ExpiryWindow time.Duration

	source Source
}

// NewProvider wraps source for use with credentials.NewCredentials.
func NewProvider(source Source, expiryWindow time.Duration) *Provider {
	return &Provider{
		ExpiryWindow: expiryWindow,
		source:       source,
	}
}

// NewCredentials returns aws-sdk-go credentials backed by source, ready to be
// set as aws.Config.Credentials of an S3 client.
func NewCredentials(source Source, expiryWindow time.Duration) *credentials.Credentials {
	return credentials.NewCredentials(NewProvider(source, expiryWindow))
}

// Retrieve returns the current snapshot as a credentials.Value.
func (p *Provider) Retrieve() (credentials.Value, error) {
	return p.RetrieveWithContext(context.Background())
}

// RetrieveWithContext returns the current snapshot as a credentials.Value.
func (p *Provider) RetrieveWithContext(ctx credentials.Context) (credentials.Value, error) {
	snapshot, err := p.source.Retrieve(ctx)
	if err != nil {
		return credentials.Value{ProviderName: ProviderName},
			awserr.New(ErrCodeRoleRequestError, "failed to retrieve role credentials", err)
	}

	p.SetExpiration(snapshot.ExpiresAt, p.ExpiryWindow)
	return snapshot.Value(ProviderName), nil
}
