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

// Parser contains logic for commandline handling flags
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
)

// parseFlags displays flags and handles them
func parseFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flag.Usage = flagUsage

	flag.StringVar(&configPath, configFlag, "", "")
	flag.StringVar(&roleName, roleFlag, "", "")
	flag.BoolVar(&runOnce, onceFlag, false, "")
	flag.BoolVar(&agentVersionFlag, versionFlag, false, "")

	flag.Parse()
}

// handles agent version flag.
// This function is without logger and will not print extra statements
func handleAgentVersionFlag() {
	if agentVersionFlag {
		fmt.Println("s3-credential-agent version: " + appconfig.Version)
		os.Exit(0)
	}
}

// flagUsage displays a command-line friendly usage message
func flagUsage() {
	fmt.Fprintln(os.Stderr, "\n\nCommand-line Usage:")
	fmt.Fprintln(os.Stderr, "\t-config \tpath of a JSON or YAML config override\t(OPTIONAL)")
	fmt.Fprintln(os.Stderr, "\t-role   \tIAM role name, overrides Imds.RoleName\t(OPTIONAL)")
	fmt.Fprintln(os.Stderr, "\t-once   \tretrieve credentials once and exit\t(OPTIONAL)")
	fmt.Fprintln(os.Stderr, "\t-version\tprint the agent version")
}

// loadConfig reads the config override at path, or the default locations when
// path is empty, and applies the role flag.
func loadConfig(path, role string) (appconfig.AgentConfig, error) {
	var config appconfig.AgentConfig
	var err error
	if path != "" {
		config, err = appconfig.LoadFromFile(path)
	} else {
		config, err = appconfig.Config(false)
	}
	if err != nil {
		return config, err
	}

	if role = strings.TrimSpace(role); role != "" {
		config.Imds.RoleName = role
	}
	if config.Imds.RoleName == "" {
		return config, fmt.Errorf("no IAM role name: set Imds.RoleName or pass -%s", roleFlag)
	}
	return config, nil
}
