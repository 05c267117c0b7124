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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Spans(t *testing.T) {
	doc := []byte(`{"a":"xy","b":[1,true,null],"c":{}}`)

	tokens, err := Tokenize(doc, 16)

	require.NoError(t, err)
	require.Len(t, tokens, 10)

	assert.Equal(t, Token{Kind: TokenObject, Start: 0, End: len(doc), Parent: -1}, tokens[0])
	assert.Equal(t, Token{Kind: TokenString, Start: 2, End: 3, Key: true, Parent: 0}, tokens[1])
	assert.Equal(t, "xy", string(tokens[2].Text(doc)))
	assert.False(t, tokens[2].Key)
	assert.Equal(t, TokenArray, tokens[4].Kind)
	assert.Equal(t, "[1,true,null]", string(tokens[4].Text(doc)))
	assert.Equal(t, TokenPrimitive, tokens[5].Kind)
	assert.Equal(t, 4, tokens[6].Parent)
	assert.Equal(t, "null", string(tokens[7].Text(doc)))
	assert.Equal(t, "{}", string(tokens[9].Text(doc)))
}

func TestTokenize_EscapedQuote(t *testing.T) {
	doc := []byte(`{"k":"a\"b"}`)

	tokens, err := Tokenize(doc, 4)

	require.NoError(t, err)
	assert.Equal(t, `a\"b`, string(tokens[2].Text(doc)))
}

func TestTokenize_ExactBudget(t *testing.T) {
	_, err := Tokenize([]byte(`{"k":"v"}`), 3)
	assert.NoError(t, err)

	_, err = Tokenize([]byte(`{"k":"v"}`), 2)
	assert.True(t, errors.Is(err, ErrTokenBudgetExceeded))
}

func TestTokenize_RejectsWhitespace(t *testing.T) {
	_, err := Tokenize([]byte(`{"k": "v"}`), 8)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestTokenize_RejectsNonASCII(t *testing.T) {
	_, err := Tokenize([]byte("{\"k\":\"caf\xc3\xa9\"}"), 8)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestTokenize_TopLevelPrimitive(t *testing.T) {
	tokens, err := Tokenize([]byte(`-12.5e3`), 1)

	require.NoError(t, err)
	assert.Equal(t, TokenPrimitive, tokens[0].Kind)
}
