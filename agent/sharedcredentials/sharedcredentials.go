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

// Package sharedcredentials exports role credentials to an AWS shared
// credentials file so that tools on the same host can use them.
package sharedcredentials

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/s3fileserver/s3-credential-agent/agent/appconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/backoffconfig"
	"github.com/s3fileserver/s3-credential-agent/agent/fileutil"
	"github.com/s3fileserver/s3-credential-agent/agent/log"
	"github.com/s3fileserver/s3-credential-agent/agent/sdkutil"
	"github.com/s3fileserver/s3-credential-agent/common/creds"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/cenkalti/backoff/v4"
	"gopkg.in/ini.v1"
)

const (
	defaultProfile     = "default"
	awsAccessKeyID     = "aws_access_key_id"
	awsSecretAccessKey = "aws_secret_access_key"
	awsSessionToken    = "aws_session_token"

	errCodeStore = "SharedCredentialsStore"
)

var getBackoff = backoffconfig.GetDefaultBoundedBackoff

// filename returns the file to write, preferring AWS_SHARED_CREDENTIALS_FILE
// when no path is configured.
func filename(path string) string {
	if path != "" {
		return path
	}
	if credPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); credPath != "" {
		return credPath
	}
	return appconfig.DefaultSharedCredentialsPath
}

func createFile(filePath string) error {
	dir, _ := filepath.Split(filePath)

	if dir != "" {
		if err := fileutil.MakeDirs(dir); err != nil {
			return fmt.Errorf("error creating directories, %s. %v", dir, err)
		}
	}

	if err := fileutil.HardenedWriteFile(filePath, []byte("")); err != nil {
		return fmt.Errorf("error creating file, %s. %v", filePath, err)
	}
	return nil
}

// Store writes snapshot into profile of the shared credentials file at path:
// * If the file does not exist, it is created with its parent directories.
// * If the profile does not exist, it is created. Other profiles are kept.
// The write is retried; if the file still cannot be loaded it is replaced by
// a file holding only this profile.
func Store(log log.T, path, profile string, snapshot creds.Snapshot) error {
	if snapshot.AccessKeyID == "" || snapshot.SecretAccessKey == "" || snapshot.SessionToken == "" {
		return awserr.New(errCodeStore, "refusing to store incomplete credentials", nil)
	}

	policy, err := getBackoff(context.Background())
	if err != nil {
		return fmt.Errorf("error creating backoff config: %v", err)
	}

	credPath := filename(path)
	err = backoff.Retry(func() error {
		return store(log, credPath, profile, snapshot, false)
	}, policy)
	if err != nil {
		log.Warn("Failed to write shared credentials file, attempting force write")
		err = store(log, credPath, profile, snapshot, true)
	}
	return err
}

func store(log log.T, credPath, profile string, snapshot creds.Snapshot, force bool) error {
	if profile == "" {
		profile = defaultProfile
	}

	if !fileutil.Exists(credPath) {
		if err := createFile(credPath); err != nil {
			return awserr.New(errCodeStore, "failed to create shared credentials file", err)
		}
	}

	config, err := ini.Load(credPath)
	if err != nil {
		if !force {
			return awserr.New(errCodeStore, "failed to load shared credentials file", err)
		}
		log.Warnf("Failed to load shared credentials file, creating a new empty config: %v", err)
		config = ini.Empty()
	}

	iniProfile := config.Section(profile)
	iniProfile.Key(awsAccessKeyID).SetValue(snapshot.AccessKeyID)
	iniProfile.Key(awsSecretAccessKey).SetValue(snapshot.SecretAccessKey)
	iniProfile.Key(awsSessionToken).SetValue(snapshot.SessionToken)

	if err = config.SaveTo(credPath); err != nil {
		return awserr.New(errCodeStore, "failed to save profile", err)
	}
	// SaveTo does not keep the mode of an existing file.
	if err = fileutil.Harden(credPath); err != nil {
		return awserr.New(errCodeStore, "failed to harden shared credentials file", err)
	}
	return nil
}

// NewExporter returns a publish listener writing every snapshot to the file
// configured in config. It returns nil when exporting is disabled.
func NewExporter(log log.T, config appconfig.SharedCredentialsCfg) func(creds.Snapshot) {
	if !config.Enabled {
		return nil
	}

	log = log.WithContext("[SharedCredentials]")
	return func(snapshot creds.Snapshot) {
		if err := Store(log, config.Path, config.Profile, snapshot); err != nil {
			log.Errorf("Failed to export credentials %v (%s): %v", snapshot, sdkutil.GetAwsErrorCode(err), err)
			return
		}
		log.Debugf("Exported credentials %v to profile %s", snapshot, config.Profile)
	}
}
