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

// Package expiration decides when temporary credentials must be refreshed.
package expiration

import (
	"fmt"
	"time"

	"github.com/s3fileserver/s3-credential-agent/common/timestamp"
)

const (
	// DefaultWindow refreshes a little under five minutes before expiry.
	DefaultWindow = 4 * time.Minute

	// MinCredentialLifetime is the shortest session the metadata service issues.
	MinCredentialLifetime = 15 * time.Minute
)

// Policy refreshes credentials Window ahead of their expiration.
type Policy struct {
	Window time.Duration
}

// NewPolicy returns a Policy after checking window against MinCredentialLifetime.
func NewPolicy(window time.Duration) (Policy, error) {
	policy := Policy{Window: window}
	if err := policy.Validate(MinCredentialLifetime); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

// Validate rejects a negative window or one that is not smaller than the
// shortest credential lifetime, which would refresh on every check.
func (p Policy) Validate(minLifetime time.Duration) error {
	if p.Window < 0 || p.Window >= minLifetime {
		return fmt.Errorf("expiration window %v must be in [0, %v)", p.Window, minLifetime)
	}
	return nil
}

// NeedsRefresh reports whether credentials expiring at expiration must be
// replaced at now. An absent or unparseable expiration always needs a refresh.
func (p Policy) NeedsRefresh(expiration string, now time.Time) bool {
	if expiration == "" {
		return true
	}
	expiresAt, err := timestamp.Parse(expiration)
	if err != nil {
		return true
	}
	return p.NeedsRefreshAt(expiresAt, now)
}

// NeedsRefreshAt is NeedsRefresh for an already parsed expiration.
func (p Policy) NeedsRefreshAt(expiresAt time.Time, now time.Time) bool {
	return now.After(expiresAt.Add(-p.Window))
}

// RefreshAt returns the moment after which NeedsRefreshAt turns true.
func (p Policy) RefreshAt(expiresAt time.Time) time.Time {
	return expiresAt.Add(-p.Window)
}
