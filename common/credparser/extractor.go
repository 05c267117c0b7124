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

// Package credparser extracts the credential fields from the small, fixed
// shape document served by the instance metadata service. It is not a general
// JSON parser: one bounded token pass, then one linear scan for known keys.
package credparser

import (
	"fmt"
)

// Fields holds the raw string values found in a credentials document.
// Values are copied verbatim; escapes are not decoded.
type Fields struct {
	Code            string
	LastUpdated     string
	AccessKeyID     string
	SecretAccessKey string
	Token           string
	Expiration      string
}

// Missing returns the names of the required fields that were not found.
func (f Fields) Missing() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{FieldLastUpdated, f.LastUpdated},
		{FieldAccessKeyID, f.AccessKeyID},
		{FieldSecretAccessKey, f.SecretAccessKey},
		{FieldToken, f.Token},
		{FieldExpiration, f.Expiration},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// Complete reports whether all five required fields were found.
func (f Fields) Complete() bool {
	return len(f.Missing()) == 0
}

func (f *Fields) target(key string) *string {
	switch key {
	case FieldCode:
		return &f.Code
	case FieldLastUpdated:
		return &f.LastUpdated
	case FieldAccessKeyID:
		return &f.AccessKeyID
	case FieldSecretAccessKey:
		return &f.SecretAccessKey
	case FieldToken:
		return &f.Token
	case FieldExpiration:
		return &f.Expiration
	}
	return nil
}

// Extractor scans documents with a fixed token budget.
type Extractor struct {
	TokenBudget int
}

// NewExtractor returns an Extractor with DefaultTokenBudget.
func NewExtractor() Extractor {
	return Extractor{TokenBudget: DefaultTokenBudget}
}

// Extract runs NewExtractor().Extract.
func Extract(doc []byte) (Fields, error) {
	return NewExtractor().Extract(doc)
}

// Extract tokenizes doc, which must already have its whitespace collapsed,
// and copies the value following each known top level key. Absent fields are
// left empty and are not an error; check Complete.
func (e Extractor) Extract(doc []byte) (Fields, error) {
	var fields Fields

	budget := e.TokenBudget
	if budget <= 0 {
		budget = DefaultTokenBudget
	}
	tokens, err := Tokenize(doc, budget)
	if err != nil {
		return fields, err
	}
	if tokens[0].Kind != TokenObject {
		return fields, fmt.Errorf("%w: document is not an object", ErrMalformedDocument)
	}

	for i := 1; i < len(tokens); i++ {
		key := tokens[i]
		if !key.Key || key.Parent != 0 {
			continue
		}
		target := fields.target(string(key.Text(doc)))
		if target == nil {
			continue
		}
		// the tokenizer guarantees a value token after every key
		value := tokens[i+1]
		if value.Kind != TokenString {
			return fields, fmt.Errorf("%w: %s is not a string", ErrMalformedDocument, key.Text(doc))
		}
		*target = string(value.Text(doc))
		i++
	}
	return fields, nil
}
