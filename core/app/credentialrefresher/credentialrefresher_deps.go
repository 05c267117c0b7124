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

package credentialrefresher

import (
	"context"

	"github.com/s3fileserver/s3-credential-agent/common/creds"

	"github.com/carlescere/scheduler"
)

// CredentialStore is the part of credentialstore.Store the refresher drives.
type CredentialStore interface {
	RefreshIfNeeded(ctx context.Context) (bool, error)
	Current() (creds.Snapshot, error)
}

var scheduleEvery = func(seconds int, check func()) (*scheduler.Job, error) {
	return scheduler.Every(seconds).Seconds().Run(check)
}

var stopJob = func(job *scheduler.Job) {
	job.Quit <- true
}
