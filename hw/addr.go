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

// Package hw provides a comparable value type for hardware (MAC)
// addresses, in the style of net/netip: a fixed-size struct rather than a
// byte slice, usable as a map key.
package hw

//go:generate errtrace -w .

import (
	"bytes"
	"fmt"

	"braces.dev/errtrace"
)

// Error is a sentinel error kind for this package.
type Error string

func (e Error) Error() string { return string(e) }

// ErrBadAddr reports input that is not an EUI-48 or EUI-64 address.
const ErrBadAddr Error = "invalid hardware address"

// Addr is an EUI-48 or EUI-64 hardware address. Addr is comparable; the
// zero Addr is "no address" and compares unequal to the all-zero EUI-48.
type Addr struct {
	octets [8]byte
	n      uint8
}

// ParseAddr parses six or eight hex octet pairs separated consistently by
// ':' or '-', such as "00:1a:2b:3c:4d:5e" or "00-1A-2B-3C-4D-5E-6F-70".
// Hex case is accepted either way; the canonical form is lowercase with
// ':'.
func ParseAddr(s string) (Addr, error) {
	switch len(s) {
	case 17, 23: // 6 or 8 pairs
	default:
		return Addr{}, errtrace.Wrap(badAddrError(s, "wrong length"))
	}
	sep := s[2]
	if sep != ':' && sep != '-' {
		return Addr{}, errtrace.Wrap(badAddrError(s, "bad separator"))
	}
	var a Addr
	a.n = uint8((len(s) + 1) / 3)
	for i := 0; i < int(a.n); i++ {
		at := i * 3
		if i > 0 && s[at-1] != sep {
			return Addr{}, errtrace.Wrap(badAddrError(s, "mixed separators"))
		}
		hi, ok1 := unhex(s[at])
		lo, ok2 := unhex(s[at+1])
		if !ok1 || !ok2 {
			return Addr{}, errtrace.Wrap(badAddrError(s, "bad hex octet"))
		}
		a.octets[i] = hi<<4 | lo
	}
	return a, nil
}

// MustParseAddr is like [ParseAddr] but panics on error.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddrFromBytes builds an Addr from 6 or 8 raw octets.
func AddrFromBytes(b []byte) (Addr, error) {
	if len(b) != 6 && len(b) != 8 {
		return Addr{}, errtrace.Wrap(fmt.Errorf("%w: %d octets", ErrBadAddr, len(b)))
	}
	var a Addr
	copy(a.octets[:], b)
	a.n = uint8(len(b))
	return a, nil
}

func badAddrError(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrBadAddr, s, reason) //errtrace:skip
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

const lowerhex = "0123456789abcdef"

// String returns the canonical lowercase colon-separated form, empty for
// the zero Addr.
func (a Addr) String() string {
	if a.n == 0 {
		return ""
	}
	buf := make([]byte, 0, int(a.n)*3-1)
	for i := 0; i < int(a.n); i++ {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, lowerhex[a.octets[i]>>4], lowerhex[a.octets[i]&0xf])
	}
	return string(buf)
}

// Is48 reports whether a is an EUI-48 address.
func (a Addr) Is48() bool { return a.n == 6 }

// Is64 reports whether a is an EUI-64 address.
func (a Addr) Is64() bool { return a.n == 8 }

// IsZero reports whether a is the zero Addr (no address at all, as
// opposed to an address whose octets are all zero).
func (a Addr) IsZero() bool { return a.n == 0 }

// IsMulticast reports whether the group bit of the first octet is set.
func (a Addr) IsMulticast() bool { return a.n > 0 && a.octets[0]&1 != 0 }

// IsLocal reports whether the locally-administered bit of the first octet
// is set.
func (a Addr) IsLocal() bool { return a.n > 0 && a.octets[0]&2 != 0 }

// Bytes returns the raw octets as a fresh slice, nil for the zero Addr.
func (a Addr) Bytes() []byte {
	if a.n == 0 {
		return nil
	}
	return append([]byte(nil), a.octets[:a.n]...)
}

// Compare orders addresses: EUI-48 before EUI-64, then octets bytewise.
func (a Addr) Compare(other Addr) int {
	if a.n != other.n {
		if a.n < other.n {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.octets[:a.n], other.octets[:other.n])
}

// MarshalText implements [encoding.TextMarshaler], emitting the canonical
// form.
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Empty text yields
// the zero Addr.
func (a *Addr) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := ParseAddr(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*a = parsed
	return nil
}
