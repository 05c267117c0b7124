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

package appconfig

const (
	// DefaultAgentName is the name of the agent binary and log context.
	DefaultAgentName = "s3-credential-agent"

	// AppConfigPath is the JSON override file.
	AppConfigPath = "/etc/s3-credential-agent/s3-credential-agent.json"

	// AppConfigYamlPath is checked when AppConfigPath does not exist.
	AppConfigYamlPath = "/etc/s3-credential-agent/s3-credential-agent.yaml"

	// DefaultMetadataURL is the instance meta-data base.
	DefaultMetadataURL = "http://instance-data/latest/meta-data/"

	DefaultRequestTimeoutSeconds    = 2
	DefaultRequestTimeoutSecondsMin = 1
	DefaultRequestTimeoutSecondsMax = 60

	DefaultMaxResponseBytes    = 64 * 1024
	DefaultMaxResponseBytesMin = 1024
	DefaultMaxResponseBytesMax = 1024 * 1024

	DefaultCheckFrequencySeconds    = 60
	DefaultCheckFrequencySecondsMin = 5
	DefaultCheckFrequencySecondsMax = 15 * 60

	// DefaultExpirationWindowSeconds is a little under five minutes so a
	// refresh lands inside the window in which the service rotates.
	DefaultExpirationWindowSeconds    = 4 * 60
	DefaultExpirationWindowSecondsMin = 30
	// must stay below the 15 minute minimum session duration
	DefaultExpirationWindowSecondsMax = 14 * 60

	DefaultSharedCredentialsPath    = "/var/lib/s3-credential-agent/credentials"
	DefaultSharedCredentialsProfile = "default"
)
