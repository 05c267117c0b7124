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

package credparser

// CollapseWhitespace removes space, tab, carriage return and newline bytes
// from doc in place and returns the shortened slice. Applying it twice is
// the same as applying it once.
func CollapseWhitespace(doc []byte) []byte {
	count := 0
	for _, c := range doc {
		if isWhitespace(c) {
			continue
		}
		doc[count] = c
		count++
	}
	return doc[:count]
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}
