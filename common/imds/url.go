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

import "strings"

// CredentialsURL returns the metadata URL that serves the credentials of
// role. base must end with a slash and role must be non-empty; neither is
// checked, the parts are concatenated as given.
func CredentialsURL(base string, role string) string {
	return base + IamRoleCredentialsOffset + role
}

// AvailabilityZoneURL returns the metadata URL that serves the instance
// availability zone.
func AvailabilityZoneURL(base string) string {
	return base + AvailabilityZoneOffset
}

// RegionFromAvailabilityZone drops the trailing zone letter,
// e.g. us-east-1a becomes us-east-1.
func RegionFromAvailabilityZone(zone string) string {
	zone = strings.TrimSpace(zone)
	if len(zone) < 2 {
		return zone
	}
	last := zone[len(zone)-1]
	if last >= 'a' && last <= 'z' {
		return zone[:len(zone)-1]
	}
	return zone
}
