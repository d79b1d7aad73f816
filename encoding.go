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

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/valyala/bytebufferpool"
)

// EncodeComponent percent-encodes s so that it can be embedded anywhere in
// an address as pure data: every byte outside the RFC 3986 unreserved set
// becomes "%XX" with uppercase hexadecimal, including each byte of a
// multi-byte UTF-8 sequence. A space becomes "%20", never "+".
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved[s[i]] {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved[c] {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xF])
		}
	}
	return b.String()
}

// DecodeComponent reverses [EncodeComponent], decoding every percent escape
// in s including escaped delimiters such as "%2F". It is strict: a '%' not
// followed by two hexadecimal digits wraps [ErrBadEscape], and escapes that
// decode to invalid UTF-8 wrap [ErrBadEncoding].
func DecodeComponent(s string) (string, error) {
	esc := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(s[i+1]) || !isASCIIHexDigit(s[i+2]) {
			return "", errtrace.Wrap(badEscapeError(s, i))
		}
		esc++
		i += 2
	}
	if esc == 0 {
		return s, nil
	}
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' {
			bb.B = append(bb.B, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		} else {
			bb.B = append(bb.B, c)
		}
	}
	if !utf8.Valid(bb.B) {
		return "", errtrace.Wrap(badEncodingError(s))
	}
	return string(bb.B), nil
}

// encodeAddress produces the strict ASCII form of a whole address without
// disturbing its structure. Structural and invalid ASCII bytes pass through
// untouched, an existing well-formed escape is kept (its hex uppercased)
// rather than double-encoded, a lone '%' passes through, a space becomes
// "%20", and every remaining byte outside the ASCII grammar is
// percent-encoded. The input string itself is returned when nothing changes.
func encodeAddress(s string) string {
	var b []byte
	ensure := func(upto int) {
		if b == nil {
			b = make([]byte, 0, len(s)+8)
			b = append(b, s[:upto]...)
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			if i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2]) {
				h1, h2 := upperHexDigit(s[i+1]), upperHexDigit(s[i+2])
				if h1 != s[i+1] || h2 != s[i+2] {
					ensure(i)
				}
				if b != nil {
					b = append(b, '%', h1, h2)
				}
				i += 2
			} else if b != nil {
				b = append(b, '%')
			}
		case c == ' ':
			ensure(i)
			b = append(b, '%', '2', '0')
		case unreserved[c] || reservedOrInvalid[c]:
			if b != nil {
				b = append(b, c)
			}
		default:
			// tolerated specials and UTF-8 sequence bytes
			ensure(i)
			b = append(b, '%', upperhex[c>>4], upperhex[c&0xF])
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

// decodeAddress produces the Unicode form of a whole address. Runs between
// structural delimiters are fully decoded and immediately re-encoded by the
// narrow rule of [decodeRunInto], so human-readable characters come out of
// their escapes while anything that could be mistaken for a delimiter stays
// percent-encoded. The input string itself is returned when it carries no
// escapes.
func decodeAddress(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var out strings.Builder
	out.Grow(len(s))
	scratch := bytebufferpool.Get()
	defer bytebufferpool.Put(scratch)
	for i := 0; i < len(s); {
		c := s[i]
		if reservedOrInvalid[c] {
			out.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && !reservedOrInvalid[s[j]] {
			j++
		}
		run := s[i:j]
		if strings.IndexByte(run, '%') < 0 {
			out.WriteString(run)
		} else if err := decodeRunInto(&out, scratch, run, s, i); err != nil {
			return "", errtrace.Wrap(err)
		}
		i = j
	}
	return out.String(), nil
}

// decodeRunInto decodes one escape-bearing run and writes it to out,
// re-escaping '%', every gen-delim and sub-delim, and every byte invalid in
// either form. Decoding a run can therefore never introduce new structure:
// "%2F" decodes to '/' and is put straight back as "%2F".
func decodeRunInto(out *strings.Builder, scratch *bytebufferpool.ByteBuffer, run, full string, base int) error {
	scratch.Reset()
	for i := 0; i < len(run); i++ {
		c := run[i]
		if c != '%' {
			scratch.B = append(scratch.B, c)
			continue
		}
		if i+2 >= len(run) || !isASCIIHexDigit(run[i+1]) || !isASCIIHexDigit(run[i+2]) {
			return badEscapeError(full, base+i)
		}
		scratch.B = append(scratch.B, unhex(run[i+1])<<4|unhex(run[i+2]))
		i += 2
	}
	if !utf8.Valid(scratch.B) {
		return badEncodingError(full)
	}
	for _, c := range scratch.B {
		if c == '%' || genDelims[c] || subDelims[c] || !validInEither[c] {
			out.WriteByte('%')
			out.WriteByte(upperhex[c>>4])
			out.WriteByte(upperhex[c&0xF])
		} else {
			out.WriteByte(c)
		}
	}
	return nil
}

func upperHexDigit(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}
