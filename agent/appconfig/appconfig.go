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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"
)

// Version is set at build time with -ldflags "-X ...appconfig.Version=".
var Version = "0.0.0"

var loadedConfig *AgentConfig
var lock sync.RWMutex

var fileExists = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Config loads the agent configuration from the default override locations.
// If reload is true, it loads the config afresh,
// otherwise it returns a previous loaded version, if any.
func Config(reload bool) (AgentConfig, error) {
	if reload || !isLoaded() {
		path := getAppConfigPath()
		if path == "" {
			agentConfig := DefaultConfig()
			cache(agentConfig)
			return agentConfig, nil
		}
		agentConfig, err := LoadFromFile(path)
		if err != nil {
			return agentConfig, err
		}
		cache(agentConfig)
	}
	return getCached(), nil
}

// LoadFromFile applies the overrides in path on top of DefaultConfig.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
// On failure the defaults are returned along with the error.
func LoadFromFile(path string) (AgentConfig, error) {
	agentConfig := DefaultConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config override %s: %w", path, err)
	}

	fmt.Printf("Applying config override from %s.\n", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &agentConfig)
	default:
		err = json.Unmarshal(content, &agentConfig)
	}
	if err != nil {
		fmt.Println("Failed to unmarshal config override. Fall back to default.")
		return DefaultConfig(), fmt.Errorf("failed to parse config override %s: %w", path, err)
	}

	agentConfig.Agent.Version = Version
	parser(&agentConfig)
	return agentConfig, nil
}

func isLoaded() bool {
	lock.RLock()
	defer lock.RUnlock()
	return loadedConfig != nil
}

func cache(config AgentConfig) {
	lock.Lock()
	defer lock.Unlock()
	loadedConfig = &config
}

func getCached() AgentConfig {
	lock.RLock()
	defer lock.RUnlock()
	return *loadedConfig
}

// getAppConfigPath returns the first override file that exists, or "".
func getAppConfigPath() string {
	for _, path := range []string{AppConfigPath, AppConfigYamlPath} {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// DefaultConfig returns default agent configuration
func DefaultConfig() AgentConfig {
	return AgentConfig{
		Agent: AgentInfo{
			Name:    DefaultAgentName,
			Version: Version,
		},
		Imds: ImdsCfg{
			MetadataURL:           DefaultMetadataURL,
			RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
			MaxResponseBytes:      DefaultMaxResponseBytes,
		},
		Refresh: RefreshCfg{
			CheckFrequencySeconds:   DefaultCheckFrequencySeconds,
			ExpirationWindowSeconds: DefaultExpirationWindowSeconds,
		},
		SharedCredentials: SharedCredentialsCfg{
			Enabled: false,
			Path:    DefaultSharedCredentialsPath,
			Profile: DefaultSharedCredentialsProfile,
		},
	}
}
