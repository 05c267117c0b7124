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

// Package timestamp converts between time.Time and the timestamp formats used
// by the metadata service and by AWS request signing.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// AwsLayout is the metadata service credential timestamp, always UTC.
	AwsLayout = "2006-01-02T15:04:05"

	// ISO8601BasicLayout is the x-amz-date form used in signatures.
	ISO8601BasicLayout = "20060102T150405Z"

	// SimpleDateLayout is the date stamp of a signature scope.
	SimpleDateLayout = "20060102"
)

// ErrInvalidTimestamp is returned for text that does not match AwsLayout.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Epoch is the zero point Parse returns for an empty timestamp.
var Epoch = time.Unix(0, 0).UTC()

// Parse converts a YYYY-MM-DDTHH:MM:SS timestamp, read as UTC, to a time.
// The service appends a Z designator, which is accepted and ignored.
// An empty string yields Epoch so callers treat it as already expired.
// Anything else that does not match fails with ErrInvalidTimestamp rather
// than guessing a time.
func Parse(value string) (time.Time, error) {
	if value == "" {
		return Epoch, nil
	}

	trimmed := strings.TrimSuffix(value, "Z")
	if len(trimmed) != len(AwsLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	parsed, err := time.ParseInLocation(AwsLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, value, err)
	}
	return parsed, nil
}

// Format renders t in AwsLayout with the service's trailing Z.
func Format(t time.Time) string {
	return t.UTC().Format(AwsLayout) + "Z"
}

// ISO8601Basic renders t as the signing timestamp, e.g. 20230101T000000Z.
func ISO8601Basic(t time.Time) string {
	return t.UTC().Format(ISO8601BasicLayout)
}

// SimpleDate renders t as the signing date stamp, e.g. 20230101.
func SimpleDate(t time.Time) string {
	return t.UTC().Format(SimpleDateLayout)
}
