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

package timestamp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EpochIsZero(t *testing.T) {
	parsed, err := Parse("1970-01-01T00:00:00")

	require.NoError(t, err)
	assert.Equal(t, int64(0), parsed.Unix())
}

func TestParse_EmptyIsZero(t *testing.T) {
	parsed, err := Parse("")

	require.NoError(t, err)
	assert.Equal(t, int64(0), parsed.Unix())
	assert.True(t, parsed.Equal(Epoch))
}

func TestParse_UTC(t *testing.T) {
	parsed, err := Parse("2023-01-01T01:00:00")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.January, 1, 1, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParse_TrailingZ(t *testing.T) {
	withZ, err := Parse("2023-06-30T23:59:59Z")
	require.NoError(t, err)

	withoutZ, err := Parse("2023-06-30T23:59:59")
	require.NoError(t, err)

	assert.True(t, withZ.Equal(withoutZ))
}

func TestParse_Malformed(t *testing.T) {
	values := []string{
		"2023-01-01",
		"2023-01-01 00:00:00",
		"2023-13-01T00:00:00",
		"2023-01-01T00:00:00.123Z",
		"2023-01-01T00:00:00+02:00",
		"2023-01-01T25:00:00",
		"not a timestamp",
		"Z",
	}
	for _, value := range values {
		_, err := Parse(value)
		assert.True(t, errors.Is(err, ErrInvalidTimestamp), value)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	now := time.Date(2023, time.March, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))

	formatted := Format(now)
	parsed, err := Parse(formatted)

	require.NoError(t, err)
	assert.Equal(t, "2023-03-04T04:06:07Z", formatted)
	assert.True(t, parsed.Equal(now))
}

func TestSigningFormats(t *testing.T) {
	now := time.Date(2023, time.March, 4, 5, 6, 7, 0, time.UTC)

	assert.Equal(t, "20230304T050607Z", ISO8601Basic(now))
	assert.Equal(t, "20230304", SimpleDate(now))
}
