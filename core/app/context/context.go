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

// Package context contains context details needed by the app to execute
package context

import (
	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"
)

// ICoreAgentContext defines a type that carries context specific data such as the logger.
type ICoreAgentContext interface {
	Log() log.T
	AppConfig() *appconfig.AgentConfig
	With(context string) ICoreAgentContext
}

// CoreAgentContext defines a type that carries context specific data such as the logger.
type CoreAgentContext struct {
	context   []string
	log       log.T
	appConfig *appconfig.AgentConfig
}

// With updates the contextSlice that changes the log prefix
func (c *CoreAgentContext) With(logContext string) ICoreAgentContext {
	contextSlice := append(append([]string{}, c.context...), logContext)
	return &CoreAgentContext{
		context:   contextSlice,
		log:       c.log.WithContext(contextSlice...),
		appConfig: c.appConfig,
	}
}

// Log returns the log
func (c *CoreAgentContext) Log() log.T {
	return c.log
}

// AppConfig returns app config
func (c *CoreAgentContext) AppConfig() *appconfig.AgentConfig {
	return c.appConfig
}

// NewCoreAgentContext creates and returns a new core agent context
func NewCoreAgentContext(logger log.T, agentConfig *appconfig.AgentConfig) ICoreAgentContext {
	return &CoreAgentContext{
		appConfig: agentConfig,
		log:       logger,
	}
}
