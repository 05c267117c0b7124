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

// Package appconfig manages the configuration of the agent.
package appconfig

// AgentInfo represents metadata for the agent process.
type AgentInfo struct {
	Name    string `yaml:"Name"`
	Version string `yaml:"Version"`
}

// ImdsCfg represents configuration for the EC2 instance metadata service.
type ImdsCfg struct {
	// MetadataURL is the meta-data base, ending with a slash.
	MetadataURL string `yaml:"MetadataURL"`
	// RoleName is the IAM role whose credentials are requested.
	RoleName              string `yaml:"RoleName"`
	RequestTimeoutSeconds int    `yaml:"RequestTimeoutSeconds"`
	// MaxResponseBytes bounds the credentials document size.
	MaxResponseBytes int `yaml:"MaxResponseBytes"`
}

// RefreshCfg represents configuration for the credential refresh cycle.
type RefreshCfg struct {
	CheckFrequencySeconds   int `yaml:"CheckFrequencySeconds"`
	ExpirationWindowSeconds int `yaml:"ExpirationWindowSeconds"`
}

// SharedCredentialsCfg controls exporting credentials to an AWS shared
// credentials file for co-located tools.
type SharedCredentialsCfg struct {
	Enabled bool   `yaml:"Enabled"`
	Path    string `yaml:"Path"`
	Profile string `yaml:"Profile"`
}

// AgentConfig stores the agent configuration values.
type AgentConfig struct {
	Agent             AgentInfo            `yaml:"Agent"`
	Imds              ImdsCfg              `yaml:"Imds"`
	Refresh           RefreshCfg           `yaml:"Refresh"`
	SharedCredentials SharedCredentialsCfg `yaml:"SharedCredentials"`
}
