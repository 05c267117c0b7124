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

// Package app represents the core credential agent object
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/s3fileserver/s3-credential-agent/agent/sdkutil"
	"github.com/s3fileserver/s3-credential-agent/agent/sharedcredentials"
	"github.com/s3fileserver/s3-credential-agent/common/creds"
	"github.com/s3fileserver/s3-credential-agent/common/imds"
	agentcontext "github.com/s3fileserver/s3-credential-agent/core/app/context"
	"github.com/s3fileserver/s3-credential-agent/core/app/credentialrefresher"
	"github.com/s3fileserver/s3-credential-agent/core/app/credentialstore"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

const regionLookupTimeout = 5 * time.Second

type CoreAgent interface {
	Start() error
	RunOnce(ctx context.Context) error
	WaitForCredentials(ctx context.Context) error
	Credentials() *credentials.Credentials
	AwsConfig(ctx context.Context) (*aws.Config, error)
	Stop()
}

type credentialStore interface {
	credentialrefresher.CredentialStore
	Retrieve(ctx context.Context) (creds.Snapshot, error)
}

type regionResolver interface {
	Region(ctx context.Context) (string, error)
}

// CredentialAgent keeps the role credentials of the instance current.
type CredentialAgent struct {
	context        agentcontext.ICoreAgentContext
	store          credentialStore
	metadata       regionResolver
	credsRefresher credentialrefresher.ICredentialRefresher
	credentials    *credentials.Credentials
}

// NewCredentialAgent wires the metadata client, the credential store, the
// optional shared credentials exporter and the refresher.
func NewCredentialAgent(context agentcontext.ICoreAgentContext) (CoreAgent, error) {
	log := context.Log()
	config := *context.AppConfig()

	client := imds.NewClient(log, config.Imds)

	var options []credentialstore.Option
	if exporter := sharedcredentials.NewExporter(log, config.SharedCredentials); exporter != nil {
		log.Infof("Exporting credentials to profile %s", config.SharedCredentials.Profile)
		options = append(options, credentialstore.WithPublishListener(exporter))
	}

	store, err := credentialstore.New(log, config, client, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential store: %w", err)
	}

	window := time.Duration(config.Refresh.ExpirationWindowSeconds) * time.Second
	return &CredentialAgent{
		context:        context,
		store:          store,
		metadata:       client,
		credsRefresher: credentialrefresher.NewCredentialRefresher(log, store, config),
		credentials:    creds.NewCredentials(store, window),
	}, nil
}

// Credentials returns aws-sdk-go credentials signing with the current snapshot.
func (agent *CredentialAgent) Credentials() *credentials.Credentials {
	return agent.credentials
}

// AwsConfig returns the configuration for aws-sdk-go clients, such as S3, in
// the region of the instance signing with Credentials.
func (agent *CredentialAgent) AwsConfig(ctx context.Context) (*aws.Config, error) {
	region, err := agent.metadata.Region(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine region: %w", err)
	}
	return sdkutil.AwsConfig(region, agent.credentials), nil
}

// Start the periodic refresh
func (agent *CredentialAgent) Start() error {
	log := agent.context.Log()
	config := agent.context.AppConfig()

	log.Infof("%s - %v", config.Agent.Name, config.Agent.Version)
	log.Infof("OS: %s, Arch: %s", runtime.GOOS, runtime.GOARCH)
	log.Infof("Starting credential agent for role %s", config.Imds.RoleName)
	agent.logRegion()

	return agent.credsRefresher.Start()
}

// WaitForCredentials blocks until the first snapshot is published or ctx is done.
func (agent *CredentialAgent) WaitForCredentials(ctx context.Context) error {
	select {
	case <-agent.credsRefresher.GetCredentialsReadyChan():
		agent.context.Log().Info("Credentials are available")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce retrieves credentials through the signing path a single time.
func (agent *CredentialAgent) RunOnce(ctx context.Context) error {
	log := agent.context.Log()

	if _, err := agent.credentials.GetWithContext(ctx); err != nil {
		return fmt.Errorf("failed to retrieve credentials: %w", err)
	}
	// after the fetch so the lookup does not eat into its deadline
	agent.logRegion()

	snapshot, err := agent.store.Current()
	if err != nil {
		return err
	}
	log.Infof("Retrieved credentials %v", snapshot)
	return nil
}

// Stop the periodic refresh
func (agent *CredentialAgent) Stop() {
	log := agent.context.Log()
	log.Info("Stopping credential agent")
	log.Flush()

	agent.credsRefresher.Stop()

	log.Info("Bye.")
	log.Flush()
}

func (agent *CredentialAgent) logRegion() {
	log := agent.context.Log()
	ctx, cancel := context.WithTimeout(context.Background(), regionLookupTimeout)
	defer cancel()

	region, err := agent.metadata.Region(ctx)
	if err != nil {
		log.Warnf("Unable to determine region: %v", err)
		return
	}
	log.Infof("Running in region %s", region)
}
