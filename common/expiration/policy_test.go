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

package expiration

import (
	"testing"
	"time"

	"github.com/s3fileserver/s3-credential-agent/common/timestamp"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestNeedsRefresh_Boundaries(t *testing.T) {
	policy := Policy{Window: DefaultWindow}

	justInside := timestamp.Format(now.Add(DefaultWindow - time.Second))
	justOutside := timestamp.Format(now.Add(DefaultWindow + time.Second))
	exactly := timestamp.Format(now.Add(DefaultWindow))

	assert.True(t, policy.NeedsRefresh(justInside, now))
	assert.False(t, policy.NeedsRefresh(justOutside, now))
	assert.False(t, policy.NeedsRefresh(exactly, now))
}

func TestNeedsRefresh_AbsentExpiration(t *testing.T) {
	policy := Policy{Window: DefaultWindow}

	assert.True(t, policy.NeedsRefresh("", now))
	assert.True(t, policy.NeedsRefresh("", time.Unix(0, 0)))
}

func TestNeedsRefresh_UnparseableExpiration(t *testing.T) {
	policy := Policy{Window: DefaultWindow}

	assert.True(t, policy.NeedsRefresh("tomorrow", now))
}

func TestNeedsRefresh_Expired(t *testing.T) {
	policy := Policy{Window: DefaultWindow}

	assert.True(t, policy.NeedsRefresh("2022-12-31T23:00:00", now))
}

func TestNeedsRefreshAt_ZeroWindow(t *testing.T) {
	policy := Policy{}

	assert.False(t, policy.NeedsRefreshAt(now, now))
	assert.True(t, policy.NeedsRefreshAt(now, now.Add(time.Second)))
}

func TestRefreshAt(t *testing.T) {
	policy := Policy{Window: DefaultWindow}

	assert.Equal(t, now.Add(-DefaultWindow), policy.RefreshAt(now))
}

func TestNewPolicy(t *testing.T) {
	policy, err := NewPolicy(DefaultWindow)
	assert.NoError(t, err)
	assert.Equal(t, DefaultWindow, policy.Window)

	_, err = NewPolicy(MinCredentialLifetime)
	assert.Error(t, err)

	_, err = NewPolicy(-time.Second)
	assert.Error(t, err)
}
