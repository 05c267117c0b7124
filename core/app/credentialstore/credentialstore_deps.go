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

package credentialstore

import (
	"context"
	"errors"

	"github.com/s3fileserver/s3-credential-agent/common/creds"
)

// State is the refresh state of a Store.
type State int32

const (
	// Idle means no refresh is running and the last one, if any, succeeded.
	Idle State = iota
	// Refreshing means a fetch is in flight.
	Refreshing
	// Failed means the last refresh failed. The previous snapshot, if any,
	// is still published.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Refreshing:
		return "Refreshing"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

var (
	// ErrTransport is returned when the credentials document could not be fetched.
	ErrTransport = errors.New("failed to fetch role credentials")

	// ErrParse is returned when the credentials document is not well formed.
	ErrParse = errors.New("failed to parse role credentials")

	// ErrIncompleteCredentials is returned when a required field is absent
	// or the service reported a failure code.
	ErrIncompleteCredentials = errors.New("incomplete role credentials")

	// ErrInvalidTimestamp is returned when LastUpdated or Expiration is malformed.
	ErrInvalidTimestamp = errors.New("invalid credentials timestamp")

	// ErrCredentialsUnavailable is returned when nothing has been published yet.
	ErrCredentialsUnavailable = errors.New("role credentials are not available")
)

// Fetcher retrieves the raw credentials document of an IAM role.
// imds.Client implements it.
type Fetcher interface {
	GetCredentials(ctx context.Context, role string) ([]byte, error)
}

// PublishListener is called with every newly published snapshot.
type PublishListener func(snapshot creds.Snapshot)

// Option configures a Store.
type Option func(*Store)

// WithPublishListener registers listener to be called after each publish.
func WithPublishListener(listener PublishListener) Option {
	return func(s *Store) {
		s.listeners = append(s.listeners, listener)
	}
}
