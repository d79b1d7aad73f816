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

// Character classes used to classify address bytes, derived from the
// "reserved", "unreserved" and "pct-encoded" productions of RFC 3986
// section 2 and from the wider repertoire RFC 3987 admits in the Unicode
// form of an address.
//
// The tables are dense 256-entry arrays indexed by byte so that the
// splitter and the codecs can classify with a single load per byte.
// Bytes at or above 0x80 are UTF-8 sequence bytes of characters that are
// valid in the Unicode form, so validInEither admits them wholesale;
// UTF-8 well-formedness is enforced separately when escapes are decoded.

const upperhex = "0123456789ABCDEF"

const (
	genDelimChars = ":/?#[]@"
	subDelimChars = "!$&'()*+,;="

	// Characters outside the RFC 3986 grammar that are tolerated in the
	// Unicode form of an address and percent-encoded in the ASCII form.
	unicodeOnlyChars = "<>\" {}|\\^`"
)

var (
	genDelims         = classOf(genDelimChars)
	subDelims         = classOf(subDelimChars)
	unreserved        = unreservedClass()
	validInEither     = validInEitherClass()
	reservedOrInvalid = reservedOrInvalidClass()
)

func classOf(chars string) (t [256]bool) {
	for i := 0; i < len(chars); i++ {
		t[chars[i]] = true
	}
	return t
}

func unreservedClass() (t [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	t['-'], t['.'], t['_'], t['~'] = true, true, true, true
	return t
}

func validInEitherClass() (t [256]bool) {
	t = unreservedClass()
	for _, chars := range []string{genDelimChars, subDelimChars, unicodeOnlyChars} {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] = true
		}
	}
	t['%'] = true
	for c := 0x80; c <= 0xFF; c++ {
		t[c] = true
	}
	return t
}

func reservedOrInvalidClass() (t [256]bool) {
	valid := validInEitherClass()
	for c := range t {
		t[c] = genDelims[c] || subDelims[c] || !valid[c]
	}
	return t
}

// IsGenDelim reports whether c is one of the RFC 3986 gen-delims
// ":" "/" "?" "#" "[" "]" "@".
func IsGenDelim(c byte) bool { return genDelims[c] }

// IsSubDelim reports whether c is one of the RFC 3986 sub-delims
// "!" "$" "&" "'" "(" ")" "*" "+" "," ";" "=".
func IsSubDelim(c byte) bool { return subDelims[c] }

// IsReserved reports whether c is reserved by RFC 3986 section 2.2,
// i.e. a gen-delim or a sub-delim.
func IsReserved(c byte) bool { return genDelims[c] || subDelims[c] }

// IsUnreserved reports whether c is unreserved by RFC 3986 section 2.3:
// ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsUnreserved(c byte) bool { return unreserved[c] }

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isSchemeByte reports whether c may appear in a scheme name after the
// first character, per the RFC 3986 section 3.1 production
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeByte(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '+' || c == '-' || c == '.'
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
