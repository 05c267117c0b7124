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

// Package credentialstore keeps the current IAM role credentials of the
// instance and replaces them before they expire.
//
// Readers never block: the current snapshot is a single atomic pointer that a
// refresh swaps once a complete, validated snapshot has been built. At most
// one refresh runs at a time.
package credentialstore

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"
	"github.com/s3fileserver/s3-credential-agent/common/credparser"
	"github.com/s3fileserver/s3-credential-agent/common/creds"
	"github.com/s3fileserver/s3-credential-agent/common/expiration"
	"github.com/s3fileserver/s3-credential-agent/common/timestamp"

	"github.com/twinj/uuid"
	"golang.org/x/sync/semaphore"
)

// Store publishes credential snapshots fetched from the metadata service.
type Store struct {
	log       log.T
	role      string
	fetcher   Fetcher
	policy    expiration.Policy
	extractor credparser.Extractor
	listeners []PublishListener

	current atomic.Pointer[creds.Snapshot]
	state   atomic.Int32
	refresh *semaphore.Weighted

	errLock sync.RWMutex
	lastErr error

	getCurrentTimeFunc func() time.Time
}

// New returns a Store for the role named in config.
func New(log log.T, config appconfig.AgentConfig, fetcher Fetcher, options ...Option) (*Store, error) {
	if config.Imds.RoleName == "" {
		return nil, fmt.Errorf("no IAM role name configured")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("no credentials fetcher")
	}

	policy, err := expiration.NewPolicy(time.Duration(config.Refresh.ExpirationWindowSeconds) * time.Second)
	if err != nil {
		return nil, err
	}

	s := &Store{
		log:                log.WithContext("[CredentialStore]"),
		role:               config.Imds.RoleName,
		fetcher:            fetcher,
		policy:             policy,
		extractor:          credparser.NewExtractor(),
		refresh:            semaphore.NewWeighted(1),
		getCurrentTimeFunc: time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// Role returns the IAM role whose credentials the store holds.
func (s *Store) Role() string {
	return s.role
}

// Current returns a copy of the published snapshot without checking its age.
func (s *Store) Current() (creds.Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return creds.Snapshot{}, ErrCredentialsUnavailable
	}
	return *snapshot, nil
}

// State returns the refresh state.
func (s *Store) State() State {
	return State(s.state.Load())
}

// LastError returns the error of the last refresh, or nil if it succeeded.
func (s *Store) LastError() error {
	s.errLock.RLock()
	defer s.errLock.RUnlock()
	return s.lastErr
}

// NeedsRefresh reports whether the published snapshot is missing or inside
// the expiration window.
func (s *Store) NeedsRefresh() bool {
	snapshot := s.current.Load()
	if snapshot == nil {
		return true
	}
	return s.policy.NeedsRefreshAt(snapshot.ExpiresAt, s.getCurrentTimeFunc())
}

// RefreshIfNeeded refreshes when NeedsRefresh is true. It reports whether a
// new snapshot was published.
func (s *Store) RefreshIfNeeded(ctx context.Context) (bool, error) {
	if !s.NeedsRefresh() {
		return false, nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches, validates and publishes a new snapshot. When a refresh is
// already running it returns (false, nil) without fetching. On failure the
// previous snapshot stays published.
func (s *Store) Refresh(ctx context.Context) (bool, error) {
	if !s.refresh.TryAcquire(1) {
		s.log.Debug("Credential refresh already in progress")
		return false, nil
	}
	defer s.refresh.Release(1)

	s.state.Store(int32(Refreshing))
	log := s.log.WithContext(fmt.Sprintf("[Attempt-%s]", uuid.NewV4().String()))

	snapshot, err := s.fetchSnapshot(ctx)
	s.setLastError(err)
	if err != nil {
		s.state.Store(int32(Failed))
		log.Errorf("Failed to refresh credentials for role %s: %v", s.role, err)
		return false, err
	}

	s.current.Store(&snapshot)
	s.state.Store(int32(Idle))
	log.Infof("Published credentials %v, next refresh after %s",
		snapshot, timestamp.Format(s.policy.RefreshAt(snapshot.ExpiresAt)))

	s.notify(log, snapshot)
	return true, nil
}

// Retrieve returns a snapshot that is safe to sign with, refreshing first when
// needed. If the refresh fails but the published snapshot has not expired yet,
// that snapshot is returned. An expired snapshot is never returned.
// Retrieve implements creds.Source.
func (s *Store) Retrieve(ctx context.Context) (creds.Snapshot, error) {
	_, err := s.RefreshIfNeeded(ctx)
	if err == nil && !s.usable(s.current.Load()) {
		// Another caller is fetching a replacement; wait for it.
		if err = s.refresh.Acquire(ctx, 1); err != nil {
			return creds.Snapshot{}, fmt.Errorf("%w: %v", ErrCredentialsUnavailable, err)
		}
		s.refresh.Release(1)
		err = s.LastError()
	}

	snapshot := s.current.Load()
	if !s.usable(snapshot) {
		if err != nil {
			return creds.Snapshot{}, err
		}
		if snapshot == nil {
			return creds.Snapshot{}, ErrCredentialsUnavailable
		}
		return creds.Snapshot{}, fmt.Errorf("%w: credentials expired at %s", ErrCredentialsUnavailable, snapshot.Expiration)
	}
	if err != nil {
		s.log.Warnf("Using credentials %v after failed refresh: %v", *snapshot, err)
	}
	return *snapshot, nil
}

// usable reports whether snapshot exists and has not expired.
func (s *Store) usable(snapshot *creds.Snapshot) bool {
	return snapshot != nil && s.getCurrentTimeFunc().Before(snapshot.ExpiresAt)
}

func (s *Store) fetchSnapshot(ctx context.Context) (creds.Snapshot, error) {
	document, err := s.fetcher.GetCredentials(ctx, s.role)
	if err != nil {
		return creds.Snapshot{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	retrievedAt := s.getCurrentTimeFunc()

	fields, err := s.extractor.Extract(credparser.CollapseWhitespace(document))
	if err != nil {
		return creds.Snapshot{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if fields.Code != "" && fields.Code != credparser.CodeSuccess {
		return creds.Snapshot{}, fmt.Errorf("%w: service returned code %q", ErrIncompleteCredentials, fields.Code)
	}
	if missing := fields.Missing(); len(missing) > 0 {
		return creds.Snapshot{}, fmt.Errorf("%w: missing %v", ErrIncompleteCredentials, missing)
	}

	lastUpdatedAt, err := timestamp.Parse(fields.LastUpdated)
	if err != nil {
		return creds.Snapshot{}, fmt.Errorf("%w: %s: %v", ErrInvalidTimestamp, credparser.FieldLastUpdated, err)
	}
	expiresAt, err := timestamp.Parse(fields.Expiration)
	if err != nil {
		return creds.Snapshot{}, fmt.Errorf("%w: %s: %v", ErrInvalidTimestamp, credparser.FieldExpiration, err)
	}
	if !retrievedAt.Before(expiresAt) {
		return creds.Snapshot{}, fmt.Errorf("%w: %s %s is not after retrieval time %s",
			ErrInvalidTimestamp, credparser.FieldExpiration, fields.Expiration, timestamp.Format(retrievedAt))
	}

	return creds.Snapshot{
		LastUpdated:     fields.LastUpdated,
		AccessKeyID:     fields.AccessKeyID,
		SecretAccessKey: fields.SecretAccessKey,
		SessionToken:    fields.Token,
		Expiration:      fields.Expiration,
		LastUpdatedAt:   lastUpdatedAt,
		ExpiresAt:       expiresAt,
		RetrievedAt:     retrievedAt,
	}, nil
}

func (s *Store) setLastError(err error) {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	s.lastErr = err
}

func (s *Store) notify(log log.T, snapshot creds.Snapshot) {
	for _, listener := range s.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("Credentials publish listener panic: %v", r)
					log.Errorf("Stacktrace:\n%s", debug.Stack())
				}
			}()
			listener(snapshot)
		}()
	}
}
