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

package context

import (
	"testing"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/log"

	"github.com/stretchr/testify/assert"
)

func TestCreateContext(t *testing.T) {
	logger := log.NewMockLog()
	agentConfig := appconfig.DefaultConfig()

	context := NewCoreAgentContext(logger, &agentConfig)

	assert.Equal(t, logger, context.Log())
	assert.Equal(t, &agentConfig, context.AppConfig())
}

func TestWithContext(t *testing.T) {
	logger := log.NewMockLog()
	agentConfig := appconfig.DefaultConfig()
	context := NewCoreAgentContext(logger, &agentConfig)

	first := context.With("[first]").(*CoreAgentContext)
	second := first.With("[second]").(*CoreAgentContext)
	sibling := first.With("[sibling]").(*CoreAgentContext)

	assert.Equal(t, []string{"[first]"}, first.context)
	assert.Equal(t, []string{"[first]", "[second]"}, second.context)
	assert.Equal(t, []string{"[first]", "[sibling]"}, sibling.context)
	assert.Equal(t, &agentConfig, second.AppConfig())
}
