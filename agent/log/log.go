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

// Package log wraps seelog for the agent. Call Logger once from main and pass
// the result (or a WithContext child of it) to every component.
package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/cihub/seelog"
)

const (
	LogFile   = "s3-credential-agent.log"
	ErrorFile = "errors.log"

	// DefaultSeelogConfigFilePath is read on startup when present.
	// See https://github.com/cihub/seelog for the format.
	DefaultSeelogConfigFilePath = "/etc/s3-credential-agent/seelog.xml"

	DefaultLogDir = "/var/log/s3-credential-agent"
)

// pkgMutex serializes calls into the shared seelog logger.
var pkgMutex = new(sync.Mutex)

var loadedLogger T
var lock sync.RWMutex

var readConfigFile = os.ReadFile

// Logger returns the process logger, loading it on first use.
func Logger() T {
	lock.RLock()
	logger := loadedLogger
	lock.RUnlock()
	if logger != nil {
		return logger
	}

	lock.Lock()
	defer lock.Unlock()
	if loadedLogger == nil {
		loadedLogger = initLogger()
	}
	return loadedLogger
}

// initLogger uses the seelog config file when one exists and the built in
// default otherwise.
func initLogger() T {
	configBytes, err := readConfigFile(DefaultSeelogConfigFilePath)
	if err != nil {
		configBytes = DefaultConfig()
	}

	logger, err := initLoggerFromBytes(configBytes)
	if err != nil {
		fmt.Println("Error parsing logger config, falling back to default:", err)
		logger, _ = initLoggerFromBytes(DefaultConfig())
	}
	return logger
}

func initLoggerFromBytes(seelogConfig []byte) (T, error) {
	seelogger, err := seelog.LoggerFromConfigAsBytes(seelogConfig)
	if err != nil {
		return nil, err
	}
	return withContext(seelogger), nil
}

func withContext(logger seelog.LoggerInterface, context ...string) T {
	// stack depth 2 skips the Wrapper frame so %FuncShort names the caller
	logger.SetAdditionalStackDepth(2)
	return &Wrapper{
		Delegate: logger,
		Format:   ContextFormatFilter{Context: context},
		M:        pkgMutex,
	}
}

// ContextFormatFilter prefixes every message with its context strings.
type ContextFormatFilter struct {
	Context []string
}

// Filter adds the context at the beginning of the parameter slice.
func (f ContextFormatFilter) Filter(params ...interface{}) []interface{} {
	newParams := make([]interface{}, 0, len(f.Context)+len(params))
	for _, c := range f.Context {
		newParams = append(newParams, c+" ")
	}
	return append(newParams, params...)
}

// Filterf adds the context in front of the format string.
func (f ContextFormatFilter) Filterf(format string, params ...interface{}) (string, []interface{}) {
	prefix := ""
	for _, c := range f.Context {
		prefix += c + " "
	}
	return prefix + format, params
}
