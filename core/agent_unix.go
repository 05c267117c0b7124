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

//go:build darwin || freebsd || linux || netbsd || openbsd
// +build darwin freebsd linux netbsd openbsd

// Package main represents the entry point of the agent.
package main

import (
	"fmt"
	"os"

	logger "github.com/s3fileserver/s3-credential-agent/agent/log"
)

func main() {
	parseFlags()
	handleAgentVersionFlag()

	// initialize logger
	log := logger.Logger()
	defer log.Close()
	defer log.Flush()

	config, err := loadConfig(configPath, roleName)
	if err != nil {
		log.Errorf("failed to load configuration: %v", err)
		log.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if runOnce {
		exitCode := runSingleRefresh(log, &config)
		log.Flush()
		log.Close()
		os.Exit(exitCode)
	}

	// run agent
	run(log, &config)
}
