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
	"fmt"
)

type scanState int

const (
	expectValue scanState = iota
	expectValueOrClose
	expectKey
	expectKeyOrClose
	expectColon
	expectCommaOrClose
	expectEnd
)

type tokenizer struct {
	doc    []byte
	tokens []Token
	budget int
	// open containers, innermost last
	open  []int
	state scanState
}

// Tokenize splits a whitespace free document into at most budget tokens in a
// single pass. Punctuation produces no tokens, so a key token is always
// followed by the token of its value. Whitespace, non-ASCII bytes, trailing
// data and unbalanced containers are rejected.
func Tokenize(doc []byte, budget int) ([]Token, error) {
	t := &tokenizer{
		doc:    doc,
		tokens: make([]Token, 0, budget),
		budget: budget,
		state:  expectValue,
	}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.tokens, nil
}

func (t *tokenizer) run() error {
	pos := 0
	for pos < len(t.doc) {
		c := t.doc[pos]
		switch {
		case c == '{' || c == '[':
			if t.state != expectValue && t.state != expectValueOrClose {
				return t.unexpected(pos)
			}
			kind, next := TokenArray, expectValueOrClose
			if c == '{' {
				kind, next = TokenObject, expectKeyOrClose
			}
			index, err := t.add(Token{Kind: kind, Start: pos, End: -1})
			if err != nil {
				return err
			}
			t.open = append(t.open, index)
			t.state = next
			pos++

		case c == '}' || c == ']':
			if err := t.close(c, pos); err != nil {
				return err
			}
			pos++

		case c == '"':
			key := t.state == expectKey || t.state == expectKeyOrClose
			if !key && t.state != expectValue && t.state != expectValueOrClose {
				return t.unexpected(pos)
			}
			end, err := t.scanString(pos + 1)
			if err != nil {
				return err
			}
			if _, err = t.add(Token{Kind: TokenString, Start: pos + 1, End: end, Key: key}); err != nil {
				return err
			}
			if key {
				t.state = expectColon
			} else {
				t.afterValue()
			}
			pos = end + 1

		case c == ':':
			if t.state != expectColon {
				return t.unexpected(pos)
			}
			t.state = expectValue
			pos++

		case c == ',':
			if t.state != expectCommaOrClose {
				return t.unexpected(pos)
			}
			if t.tokens[t.open[len(t.open)-1]].Kind == TokenObject {
				t.state = expectKey
			} else {
				t.state = expectValue
			}
			pos++

		default:
			if t.state != expectValue && t.state != expectValueOrClose {
				return t.unexpected(pos)
			}
			end, err := t.scanPrimitive(pos)
			if err != nil {
				return err
			}
			if _, err = t.add(Token{Kind: TokenPrimitive, Start: pos, End: end}); err != nil {
				return err
			}
			t.afterValue()
			pos = end
		}
	}

	if len(t.open) > 0 {
		return fmt.Errorf("%w: unterminated container at offset %d", ErrMalformedDocument, t.tokens[t.open[len(t.open)-1]].Start)
	}
	if t.state != expectEnd {
		return fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	return nil
}

func (t *tokenizer) add(token Token) (int, error) {
	if len(t.tokens) >= t.budget {
		return -1, fmt.Errorf("%w: more than %d tokens", ErrTokenBudgetExceeded, t.budget)
	}
	token.Parent = -1
	if len(t.open) > 0 {
		token.Parent = t.open[len(t.open)-1]
	}
	t.tokens = append(t.tokens, token)
	return len(t.tokens) - 1, nil
}

func (t *tokenizer) close(c byte, pos int) error {
	if len(t.open) == 0 {
		return t.unexpected(pos)
	}
	index := t.open[len(t.open)-1]
	kind := t.tokens[index].Kind

	switch {
	case c == '}' && kind == TokenObject && (t.state == expectCommaOrClose || t.state == expectKeyOrClose):
	case c == ']' && kind == TokenArray && (t.state == expectCommaOrClose || t.state == expectValueOrClose):
	default:
		return t.unexpected(pos)
	}

	t.tokens[index].End = pos + 1
	t.open = t.open[:len(t.open)-1]
	t.afterValue()
	return nil
}

func (t *tokenizer) afterValue() {
	if len(t.open) == 0 {
		t.state = expectEnd
	} else {
		t.state = expectCommaOrClose
	}
}

// scanString returns the offset of the closing quote of the string whose
// content starts at start.
func (t *tokenizer) scanString(start int) (int, error) {
	for pos := start; pos < len(t.doc); pos++ {
		c := t.doc[pos]
		switch {
		case c == '"':
			return pos, nil
		case c == '\\':
			pos++
			if pos >= len(t.doc) {
				break
			}
			switch t.doc[pos] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if pos+4 >= len(t.doc) || !isHex(t.doc[pos+1:pos+5]) {
					return -1, fmt.Errorf("%w: invalid unicode escape at offset %d", ErrMalformedDocument, pos)
				}
				pos += 4
			default:
				return -1, fmt.Errorf("%w: invalid escape at offset %d", ErrMalformedDocument, pos)
			}
		case c < 0x20 || c >= 0x7f:
			return -1, t.unexpected(pos)
		}
	}
	return -1, fmt.Errorf("%w: unterminated string at offset %d", ErrMalformedDocument, start-1)
}

// scanPrimitive returns the offset just past a number, true, false or null.
func (t *tokenizer) scanPrimitive(start int) (int, error) {
	end := start
	for end < len(t.doc) {
		c := t.doc[end]
		if c == ',' || c == '}' || c == ']' || c == ':' {
			break
		}
		end++
	}

	literal := string(t.doc[start:end])
	switch literal {
	case "true", "false", "null":
		return end, nil
	}
	if literal == "" {
		return -1, t.unexpected(start)
	}
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if !(c >= '0' && c <= '9') && c != '-' && c != '+' && c != '.' && c != 'e' && c != 'E' {
			return -1, t.unexpected(start + i)
		}
	}
	return end, nil
}

func (t *tokenizer) unexpected(pos int) error {
	return fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedDocument, t.doc[pos], pos)
}

func isHex(b []byte) bool {
	for _, c := range b {
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
