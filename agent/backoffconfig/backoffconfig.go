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

// Package backoffconfig builds the retry policies used for local side
// effects such as writing the shared credentials file.
package backoffconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMultiplier      = 2.0
	defaultMaxInterval     = 5 * time.Second
	defaultJitterFactor    = 0.2
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxRetries      = 5

	maxRetriesLimit      = 100
	initialIntervalLimit = 10 * time.Second
)

// GetDefaultBoundedBackoff returns the default write retry policy bound to ctx.
func GetDefaultBoundedBackoff(ctx context.Context) (backoff.BackOff, error) {
	return GetBoundedBackoff(ctx, defaultInitialInterval, defaultMaxRetries)
}

// GetBoundedBackoff returns an exponential policy with jitter that gives up
// after maxRetries retries or when ctx is done, whichever comes first.
//
// initialInterval is the wait after the first failure; it doubles on every
// retry up to defaultMaxInterval.
func GetBoundedBackoff(ctx context.Context, initialInterval time.Duration, maxRetries int) (backoff.BackOff, error) {
	if initialInterval <= 0 || initialInterval > initialIntervalLimit {
		return nil, fmt.Errorf("initialInterval (%v) is out of range (0, %v]", initialInterval, initialIntervalLimit)
	}
	if maxRetries < 0 || maxRetries > maxRetriesLimit {
		return nil, fmt.Errorf("maxRetries (%d) is out of range [0, %d]", maxRetries, maxRetriesLimit)
	}

	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = initialInterval
	exponential.MaxInterval = defaultMaxInterval
	exponential.Multiplier = defaultMultiplier
	exponential.RandomizationFactor = defaultJitterFactor
	// retries are bounded by count, not by elapsed time
	exponential.MaxElapsedTime = 0
	exponential.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(maxRetries)), ctx), nil
}
