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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultAgentName, config.Agent.Name)
	assert.Equal(t, "http://instance-data/latest/meta-data/", config.Imds.MetadataURL)
	assert.Equal(t, 60, config.Refresh.CheckFrequencySeconds)
	assert.Equal(t, 240, config.Refresh.ExpirationWindowSeconds)
	assert.False(t, config.SharedCredentials.Enabled)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeConfig(t, "agent.json", `{
		"Imds": {"MetadataURL": "http://169.254.169.254/latest/meta-data", "RoleName": " S3FileServer "},
		"Refresh": {"CheckFrequencySeconds": 30},
		"SharedCredentials": {"Enabled": true, "Profile": "s3"}
	}`)

	config, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "http://169.254.169.254/latest/meta-data/", config.Imds.MetadataURL)
	assert.Equal(t, "S3FileServer", config.Imds.RoleName)
	assert.Equal(t, 30, config.Refresh.CheckFrequencySeconds)
	assert.Equal(t, DefaultExpirationWindowSeconds, config.Refresh.ExpirationWindowSeconds)
	assert.True(t, config.SharedCredentials.Enabled)
	assert.Equal(t, "s3", config.SharedCredentials.Profile)
	assert.Equal(t, DefaultSharedCredentialsPath, config.SharedCredentials.Path)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfig(t, "agent.yaml", `
Imds:
  RoleName: S3FileServer
  RequestTimeoutSeconds: 5
Refresh:
  ExpirationWindowSeconds: 120
`)

	config, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "S3FileServer", config.Imds.RoleName)
	assert.Equal(t, 5, config.Imds.RequestTimeoutSeconds)
	assert.Equal(t, 120, config.Refresh.ExpirationWindowSeconds)
	assert.Equal(t, DefaultMetadataURL, config.Imds.MetadataURL)
}

func TestLoadFromFile_ClampsOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, "agent.json", `{
		"Imds": {"RequestTimeoutSeconds": 600, "MaxResponseBytes": 1},
		"Refresh": {"CheckFrequencySeconds": 1, "ExpirationWindowSeconds": 3600}
	}`)

	config, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeoutSeconds, config.Imds.RequestTimeoutSeconds)
	assert.Equal(t, DefaultMaxResponseBytes, config.Imds.MaxResponseBytes)
	assert.Equal(t, DefaultCheckFrequencySeconds, config.Refresh.CheckFrequencySeconds)
	assert.Equal(t, DefaultExpirationWindowSeconds, config.Refresh.ExpirationWindowSeconds)
}

func TestLoadFromFile_InvalidContentFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, "agent.json", `{not json`)

	config, err := LoadFromFile(path)

	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfig_NoOverrideUsesDefaults(t *testing.T) {
	oldExists := fileExists
	defer func() { fileExists = oldExists }()
	fileExists = func(string) bool { return false }

	config, err := Config(true)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestGetStringValue(t *testing.T) {
	assert.Equal(t, "test", getStringValue("", "test"))
	assert.Equal(t, "val", getStringValue("val", "test"))
}

func TestGetNumericValue(t *testing.T) {
	assert.Equal(t, 10, getNumericValue(10, 1, 100, 50))
	assert.Equal(t, 50, getNumericValue(0, 1, 100, 50))
	assert.Equal(t, 50, getNumericValue(101, 1, 100, 50))
}
