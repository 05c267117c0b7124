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

// Package credentialrefresher periodically asks the credential store to
// replace credentials that are about to expire.
package credentialrefresher

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"

	"github.com/carlescere/scheduler"
)

type ICredentialRefresher interface {
	Start() error
	Stop()
	GetCredentialsReadyChan() chan struct{}
}

type credentialsRefresher struct {
	log                   log.T
	store                 CredentialStore
	checkFrequencySeconds int

	credsReadyOnce       sync.Once
	credentialsReadyChan chan struct{}

	lock   sync.Mutex
	job    *scheduler.Job
	cancel context.CancelFunc
}

func NewCredentialRefresher(log log.T, store CredentialStore, config appconfig.AgentConfig) ICredentialRefresher {
	return &credentialsRefresher{
		log:                   log.WithContext("[CredentialRefresher]"),
		store:                 store,
		checkFrequencySeconds: config.Refresh.CheckFrequencySeconds,
		credsReadyOnce:        sync.Once{},
		credentialsReadyChan:  make(chan struct{}, 1),
	}
}

// Start schedules the credential check every CheckFrequencySeconds, the first
// one immediately. Calling Start on a running refresher does nothing.
func (c *credentialsRefresher) Start() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.job != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	job, err := scheduleEvery(c.checkFrequencySeconds, func() {
		c.checkCredentials(ctx)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("unable to schedule credential refresh: %w", err)
	}

	c.job = job
	c.cancel = cancel
	c.log.Infof("credentialRefresher has started, checking every %d seconds", c.checkFrequencySeconds)
	return nil
}

// Stop cancels an in-flight check and stops the schedule. It is safe to call
// more than once.
func (c *credentialsRefresher) Stop() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.job == nil {
		return
	}

	c.log.Info("Sending credential refresher stop signal")
	c.cancel()
	stopJob(c.job)
	c.job = nil
	c.cancel = nil
	c.log.Flush()
}

// GetCredentialsReadyChan receives once, after credentials are first available.
func (c *credentialsRefresher) GetCredentialsReadyChan() chan struct{} {
	return c.credentialsReadyChan
}

func (c *credentialsRefresher) sendCredentialsReadyMessage() {
	c.credsReadyOnce.Do(func() {
		c.credentialsReadyChan <- struct{}{}
		c.log.Flush()
	})
}

func (c *credentialsRefresher) checkCredentials(ctx context.Context) {
	defer func() {
		if err := recover(); err != nil {
			c.log.Errorf("credentials refresher panic: %v", err)
			c.log.Errorf("Stacktrace:\n%s", debug.Stack())
			c.log.Flush()
		}
	}()

	c.log.Debug("Checking credential expiration")
	refreshed, err := c.store.RefreshIfNeeded(ctx)
	if err != nil {
		c.log.Warnf("Credential refresh failed, retrying in %d seconds: %v", c.checkFrequencySeconds, err)
	} else if refreshed {
		c.log.Debug("Credentials refreshed")
	}

	if _, err := c.store.Current(); err == nil {
		c.sendCredentialsReadyMessage()
	}
}
