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

// Limits and defaults applied after an override file is read.

package appconfig

import (
	"log"
	"strings"
)

func parser(config *AgentConfig) {
	log.Printf("processing appconfig overrides")

	config.Agent.Name = getStringValue(config.Agent.Name, DefaultAgentName)

	// IMDS config
	config.Imds.MetadataURL = getStringValue(config.Imds.MetadataURL, DefaultMetadataURL)
	if !strings.HasSuffix(config.Imds.MetadataURL, "/") {
		config.Imds.MetadataURL += "/"
	}
	config.Imds.RoleName = strings.TrimSpace(config.Imds.RoleName)
	config.Imds.RequestTimeoutSeconds = getNumericValue(
		config.Imds.RequestTimeoutSeconds,
		DefaultRequestTimeoutSecondsMin,
		DefaultRequestTimeoutSecondsMax,
		DefaultRequestTimeoutSeconds)
	config.Imds.MaxResponseBytes = getNumericValue(
		config.Imds.MaxResponseBytes,
		DefaultMaxResponseBytesMin,
		DefaultMaxResponseBytesMax,
		DefaultMaxResponseBytes)

	// Refresh config
	config.Refresh.CheckFrequencySeconds = getNumericValue(
		config.Refresh.CheckFrequencySeconds,
		DefaultCheckFrequencySecondsMin,
		DefaultCheckFrequencySecondsMax,
		DefaultCheckFrequencySeconds)
	config.Refresh.ExpirationWindowSeconds = getNumericValue(
		config.Refresh.ExpirationWindowSeconds,
		DefaultExpirationWindowSecondsMin,
		DefaultExpirationWindowSecondsMax,
		DefaultExpirationWindowSeconds)

	// Shared credentials config
	config.SharedCredentials.Path = getStringValue(config.SharedCredentials.Path, DefaultSharedCredentialsPath)
	config.SharedCredentials.Profile = getStringValue(config.SharedCredentials.Profile, DefaultSharedCredentialsProfile)
}

func getStringValue(configValue string, defaultValue string) string {
	if configValue == "" {
		return defaultValue
	}
	return configValue
}

func getNumericValue(configValue int, minValue int, maxValue int, defaultValue int) int {
	if configValue < minValue || configValue > maxValue {
		return defaultValue
	}
	return configValue
}
