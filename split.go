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

package uriq

import "strings"

// splitAddress locates the structural delimiters of an address in a single
// left-to-right pass and returns their byte positions, -1 standing for an
// absent part.
//
//   - schemeLen is the index of the ':' terminating a well-formed scheme
//     prefix, which equals the length of the scheme name itself.
//   - queryAt is the index of the '?' introducing the query.
//   - fragmentAt is the index of the '#' introducing the fragment.
//
// The scan is deliberately forgiving: it never fails, no matter how
// malformed the input. Anything between the scheme and the first '?' or '#'
// is the hier-part; a '#' seen before any '?' means the address has a
// fragment and no query. The function performs no allocation.
func splitAddress(s string) (schemeLen, queryAt, fragmentAt int) {
	queryAt, fragmentAt = -1, -1
	schemeLen = scanScheme(s)
	i := 0
	if schemeLen >= 0 {
		i = schemeLen + 1
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case '?':
			queryAt = i
			if j := strings.IndexByte(s[i+1:], '#'); j >= 0 {
				fragmentAt = i + 1 + j
			}
			return
		case '#':
			fragmentAt = i
			return
		}
	}
	return
}

// scanScheme returns the length of a leading scheme name terminated by ':'
// per RFC 3986 section 3.1, or -1 when the input does not start with one.
// Hitting any byte outside the scheme charset, or the end of the string,
// before a ':' disqualifies the prefix entirely.
func scanScheme(s string) int {
	if s == "" || !isASCIILetter(s[0]) {
		return -1
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			return i
		}
		if !isSchemeByte(c) {
			return -1
		}
	}
	return -1
}

// validSchemeName reports whether s is a non-empty well-formed scheme name.
func validSchemeName(s string) bool {
	if s == "" || !isASCIILetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeByte(s[i]) {
			return false
		}
	}
	return true
}
