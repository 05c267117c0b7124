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

// Package main represents the entry point of the agent.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	logger "github.com/s3fileserver/s3-credential-agent/agent/log"
	"github.com/s3fileserver/s3-credential-agent/core/app"
	agentcontext "github.com/s3fileserver/s3-credential-agent/core/app/context"
)

const (
	configFlag  = "config"
	roleFlag    = "role"
	onceFlag    = "once"
	versionFlag = "version"
)

var (
	configPath, roleName      string
	runOnce, agentVersionFlag bool
)

func start(log logger.T, config *appconfig.AgentConfig) (app.CoreAgent, logger.T, error) {
	coreContext := agentcontext.NewCoreAgentContext(log, config).With("[" + config.Agent.Name + "]")

	coreAgent, err := app.NewCredentialAgent(coreContext)
	if err != nil {
		return nil, log, err
	}
	if err = coreAgent.Start(); err != nil {
		return nil, coreContext.Log(), err
	}
	return coreAgent, coreContext.Log(), nil
}

func blockUntilSignaled(log logger.T) {
	// Set up channel on which to receive signal notifications.
	// We must use a buffered channel or risk missing the signal
	// if we're not ready to receive when the signal is sent.
	c := make(chan os.Signal, 1)

	// Only listen to signals that require us to exit.
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	s := <-c
	log.Info("Got signal:", s)
}

// Run as a single process until signaled.
func run(log logger.T, config *appconfig.AgentConfig) {
	defer func() {
		// recover in case the agent panics
		if msg := recover(); msg != nil {
			log.Errorf("credential agent crashed with message %v!", msg)
			log.Errorf("%s: %s", msg, debug.Stack())
		}
	}()

	coreAgent, contextLog, err := start(log, config)
	if err != nil {
		contextLog.Errorf("error occurred when starting %s: %v", config.Agent.Name, err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := coreAgent.WaitForCredentials(ctx); err == nil {
			contextLog.Infof("%s is serving credentials for role %s", config.Agent.Name, config.Imds.RoleName)
		}
	}()

	blockUntilSignaled(contextLog)
	cancel()
	coreAgent.Stop()
}

// runSingleRefresh retrieves credentials once and returns the process exit code.
func runSingleRefresh(log logger.T, config *appconfig.AgentConfig) int {
	coreContext := agentcontext.NewCoreAgentContext(log, config).With("[" + config.Agent.Name + "]")

	coreAgent, err := app.NewCredentialAgent(coreContext)
	if err != nil {
		log.Errorf("error occurred when creating %s: %v", config.Agent.Name, err)
		return 1
	}

	timeout := time.Duration(config.Imds.RequestTimeoutSeconds+1) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = coreAgent.RunOnce(ctx); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}
