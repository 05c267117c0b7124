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

package log

import (
	"github.com/stretchr/testify/mock"
)

// Note: this lives outside a _test.go file so that every package's tests can
// share it.

// Mock is a testify mock of T.
type Mock struct {
	mock.Mock
}

// NewMockLog returns a Mock that accepts every log call.
func NewMockLog() *Mock {
	log := new(Mock)
	log.On("Close").Return()
	log.On("Flush").Return()
	for _, level := range []string{"Trace", "Debug", "Info"} {
		log.On(level, mock.Anything).Return()
		log.On(level+"f", mock.Anything, mock.Anything).Return()
	}
	for _, level := range []string{"Warn", "Error", "Critical"} {
		log.On(level, mock.Anything).Return(nil)
		log.On(level+"f", mock.Anything, mock.Anything).Return(nil)
	}
	return log
}

// WithContext returns the same mock so expectations are shared.
func (_m *Mock) WithContext(context ...string) T {
	return _m
}

func (_m *Mock) Tracef(format string, params ...interface{}) {
	_m.Called(format, params)
}

func (_m *Mock) Debugf(format string, params ...interface{}) {
	_m.Called(format, params)
}

func (_m *Mock) Infof(format string, params ...interface{}) {
	_m.Called(format, params)
}

func (_m *Mock) Warnf(format string, params ...interface{}) error {
	return _m.Called(format, params).Error(0)
}

func (_m *Mock) Errorf(format string, params ...interface{}) error {
	return _m.Called(format, params).Error(0)
}

func (_m *Mock) Criticalf(format string, params ...interface{}) error {
	return _m.Called(format, params).Error(0)
}

func (_m *Mock) Trace(v ...interface{}) {
	_m.Called(v)
}

func (_m *Mock) Debug(v ...interface{}) {
	_m.Called(v)
}

func (_m *Mock) Info(v ...interface{}) {
	_m.Called(v)
}

func (_m *Mock) Warn(v ...interface{}) error {
	return _m.Called(v).Error(0)
}

func (_m *Mock) Error(v ...interface{}) error {
	return _m.Called(v).Error(0)
}

func (_m *Mock) Critical(v ...interface{}) error {
	return _m.Called(v).Error(0)
}

func (_m *Mock) Flush() {
	_m.Called()
}

func (_m *Mock) Close() {
	_m.Called()
}
