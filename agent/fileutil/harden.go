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

package fileutil

import (
	"fmt"
	"os"
)

const (
	// RWPermission is the mode of files holding secrets.
	RWPermission   os.FileMode = 0600
	permissionMask os.FileMode = 0777
)

// HardenedWriteFile writes data to filename and guarantees owner-only
// permissions. If the file already exists, it hardens the permissions before
// writing data to it.
func HardenedWriteFile(filename string, data []byte) (err error) {
	if _, err = os.Stat(filename); err != nil {
		if !os.IsNotExist(err) {
			return
		}
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY, RWPermission)
		if err != nil {
			return fmt.Errorf("failed to create the file, %v", err)
		}
		f.Close()
	}

	if err = Harden(filename); err != nil {
		return
	}

	return os.WriteFile(filename, data, RWPermission)
}

// Harden restricts path to read and write access for its owner.
func Harden(path string) (err error) {
	var fi os.FileInfo
	if fi, err = os.Stat(path); err != nil {
		return
	}

	if fi.Mode()&permissionMask != RWPermission {
		err = os.Chmod(path, RWPermission)
	}
	return
}
