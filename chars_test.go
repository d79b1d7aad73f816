/*
Copyright 2026 Uriq Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uriq

import "testing"

// TestClassMembership spot-checks each table against the RFC 3986 section 2
// productions it encodes.
func TestClassMembership(t *testing.T) {
	for _, c := range []byte(genDelimChars) {
		if !IsGenDelim(c) {
			t.Errorf("IsGenDelim(%q) = false, want true", c)
		}
		if !IsReserved(c) {
			t.Errorf("IsReserved(%q) = false, want true", c)
		}
		if IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q) = true, want false", c)
		}
	}
	for _, c := range []byte(subDelimChars) {
		if !IsSubDelim(c) {
			t.Errorf("IsSubDelim(%q) = false, want true", c)
		}
		if IsGenDelim(c) {
			t.Errorf("IsGenDelim(%q) = true, want false", c)
		}
	}
	for _, c := range []byte("AZaz09-._~") {
		if !IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q) = false, want true", c)
		}
		if IsReserved(c) {
			t.Errorf("IsReserved(%q) = true, want false", c)
		}
	}
}

// TestValidInEither checks the tolerated repertoire of the Unicode form:
// the unreserved set, both delimiter sets, '%', the loosely tolerated
// specials, and all UTF-8 sequence bytes.
func TestValidInEither(t *testing.T) {
	for _, c := range []byte("a0-%:/?#[]@!$&'()*+,;=<>\" {}|\\^`") {
		if !validInEither[c] {
			t.Errorf("validInEither[%q] = false, want true", c)
		}
	}
	for c := 0x80; c <= 0xFF; c++ {
		if !validInEither[c] {
			t.Errorf("validInEither[%#x] = false, want true", c)
		}
	}
	for _, c := range []byte{0x00, 0x01, '\n', '\t', 0x1F, 0x7F} {
		if validInEither[c] {
			t.Errorf("validInEither[%#x] = true, want false", c)
		}
	}
}

// TestReservedOrInvalid checks the decode boundary set: both delimiter
// classes plus everything invalid in either form, and nothing else.
func TestReservedOrInvalid(t *testing.T) {
	for _, c := range []byte(genDelimChars + subDelimChars) {
		if !reservedOrInvalid[c] {
			t.Errorf("reservedOrInvalid[%q] = false, want true", c)
		}
	}
	for _, c := range []byte{0x00, '\n', 0x7F} {
		if !reservedOrInvalid[c] {
			t.Errorf("reservedOrInvalid[%#x] = false, want true", c)
		}
	}
	for _, c := range []byte("aZ9-._~% <>\"{}|\\^`") {
		if reservedOrInvalid[c] {
			t.Errorf("reservedOrInvalid[%q] = true, want false", c)
		}
	}
	for c := 0x80; c <= 0xFF; c++ {
		if reservedOrInvalid[c] {
			t.Errorf("reservedOrInvalid[%#x] = true, want false", c)
		}
	}
}

func TestHexHelpers(t *testing.T) {
	for _, c := range []byte("0123456789abcdefABCDEF") {
		if !isASCIIHexDigit(c) {
			t.Errorf("isASCIIHexDigit(%q) = false, want true", c)
		}
	}
	for _, c := range []byte("ghGH /%") {
		if isASCIIHexDigit(c) {
			t.Errorf("isASCIIHexDigit(%q) = true, want false", c)
		}
	}
	pairs := map[byte]byte{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15}
	for in, want := range pairs {
		if got := unhex(in); got != want {
			t.Errorf("unhex(%q) = %d, want %d", in, got, want)
		}
	}
	if got := upperHexDigit('c'); got != 'C' {
		t.Errorf("upperHexDigit('c') = %q, want 'C'", got)
	}
	if got := upperHexDigit('7'); got != '7' {
		t.Errorf("upperHexDigit('7') = %q, want '7'", got)
	}
}
