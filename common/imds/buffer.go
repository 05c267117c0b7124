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

package imds

import "errors"

var errBufferFinalized = errors.New("response buffer already finalized")

// ResponseBuffer accumulates one response body. The content is always followed
// by a NUL byte, so the backing array is a valid C-style string at any point
// between appends.
type ResponseBuffer struct {
	data      []byte
	size      int
	limit     int
	finalized bool
}

// NewResponseBuffer returns an empty buffer. A limit of zero or less means
// the buffer may grow without bound.
func NewResponseBuffer(limit int) *ResponseBuffer {
	return &ResponseBuffer{
		data:  []byte{0},
		limit: limit,
	}
}

// Append copies p to the end of the buffer. It fails without modifying the
// buffer when the limit would be exceeded.
func (b *ResponseBuffer) Append(p []byte) (int, error) {
	if b.finalized {
		return 0, errBufferFinalized
	}
	if b.limit > 0 && b.size+len(p) > b.limit {
		return 0, ErrBufferExhausted
	}

	needed := b.size + len(p) + 1
	if needed > cap(b.data) {
		newCap := 2 * cap(b.data)
		if newCap < needed {
			newCap = needed
		}
		grown := make([]byte, needed, newCap)
		copy(grown, b.data[:b.size])
		b.data = grown
	} else {
		b.data = b.data[:needed]
	}

	copy(b.data[b.size:], p)
	b.size += len(p)
	b.data[b.size] = 0
	return len(p), nil
}

// Write implements io.Writer on top of Append.
func (b *ResponseBuffer) Write(p []byte) (int, error) {
	return b.Append(p)
}

// Len returns the number of content bytes, excluding the terminator.
func (b *ResponseBuffer) Len() int {
	return b.size
}

// Bytes returns the content without the terminator. The slice aliases the
// buffer until the next Append.
func (b *ResponseBuffer) Bytes() []byte {
	return b.data[:b.size]
}

func (b *ResponseBuffer) String() string {
	return string(b.data[:b.size])
}

// Finalize ends the fetch and hands the content to the caller. Further
// appends fail.
func (b *ResponseBuffer) Finalize() []byte {
	b.finalized = true
	return b.data[:b.size]
}
