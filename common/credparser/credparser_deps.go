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

import "errors"

// TokenKind classifies a lexical span.
type TokenKind int

const (
	TokenUndefined TokenKind = iota
	TokenObject
	TokenArray
	TokenString
	TokenPrimitive
)

// Field names of the metadata credentials document.
const (
	FieldCode            = "Code"
	FieldLastUpdated     = "LastUpdated"
	FieldAccessKeyID     = "AccessKeyId"
	FieldSecretAccessKey = "SecretAccessKey"
	FieldToken           = "Token"
	FieldExpiration      = "Expiration"

	// CodeSuccess is the Code value of a usable document.
	CodeSuccess = "Success"
)

// DefaultTokenBudget fits the seven field document the metadata service
// returns: fourteen strings plus the enclosing object.
const DefaultTokenBudget = 15

var (
	// ErrTokenBudgetExceeded means the document has more tokens than allowed.
	ErrTokenBudgetExceeded = errors.New("token budget exceeded")

	// ErrMalformedDocument means the document is not well formed.
	ErrMalformedDocument = errors.New("malformed document")
)

// Token is a span of the source document. For strings the span excludes
// the quotes. Key is set on strings that are followed by a colon. Parent is
// the index of the enclosing container, or -1 at the top level.
type Token struct {
	Kind   TokenKind
	Start  int
	End    int
	Key    bool
	Parent int
}

// Text returns the bytes of doc covered by the token.
func (t Token) Text(doc []byte) []byte {
	return doc[t.Start:t.End]
}
