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

package host

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// maxLocalLen is the RFC 5321 limit on the local part.
const maxLocalLen = 64

// atext marks the bytes allowed in a dot-atom local part, per RFC 5322
// atext. Dots are structural and handled separately.
var atext [256]bool

func init() {
	const extra = "!#$%&'*+-/=?^_`{|}~"
	for c := byte('a'); c <= 'z'; c++ {
		atext[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		atext[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		atext[c] = true
	}
	for i := 0; i < len(extra); i++ {
		atext[extra[i]] = true
	}
}

// Email is an email address value: a dot-atom local part plus a [Name]
// domain. The local part keeps its case (it is opaque to everyone but the
// receiving host); the domain is canonical lowercase ASCII, so Email is
// comparable and two addresses differing only in domain case are equal.
// The zero Email is empty.
type Email struct {
	local  string
	domain Name
}

// ParseEmail parses "local@domain". The local part must be a non-empty
// dot-atom of at most 64 bytes; quoted-string locals are not accepted. The
// domain goes through [ParseName], so Unicode domains are mapped to their
// A-label form.
func ParseEmail(s string) (Email, error) {
	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return Email{}, errtrace.Wrap(badEmailError(s, "missing '@'"))
	}
	local, dom := s[:at], s[at+1:]
	if err := checkLocal(local); err != nil {
		return Email{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadEmail, s, err))
	}
	name, err := ParseName(dom)
	if err != nil {
		return Email{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadEmail, s, err))
	}
	return Email{local: local, domain: name}, nil
}

// MustParseEmail is like [ParseEmail] but panics on error.
func MustParseEmail(s string) Email {
	e, err := ParseEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

func badEmailError(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrBadEmail, s, reason) //errtrace:skip
}

func checkLocal(local string) error {
	if local == "" {
		return Error("empty local part") //errtrace:skip
	}
	if len(local) > maxLocalLen {
		return Error("local part longer than 64 bytes") //errtrace:skip
	}
	if local[0] == '.' || local[len(local)-1] == '.' {
		return Error("local part starts or ends with a dot") //errtrace:skip
	}
	prevDot := false
	for i := 0; i < len(local); i++ {
		c := local[i]
		if c == '.' {
			if prevDot {
				return Error("local part has consecutive dots") //errtrace:skip
			}
			prevDot = true
			continue
		}
		prevDot = false
		if !atext[c] {
			return fmt.Errorf("local part byte %q outside atext", c) //errtrace:skip
		}
	}
	return nil
}

// String returns "local@domain" with the domain in its ASCII form, empty
// for the zero Email.
func (e Email) String() string {
	if e.local == "" {
		return ""
	}
	return e.local + "@" + e.domain.String()
}

// Unicode returns the address with the domain in its Unicode (U-label)
// form.
func (e Email) Unicode() string {
	if e.local == "" {
		return ""
	}
	return e.local + "@" + e.domain.Unicode()
}

// Local returns the local part exactly as parsed.
func (e Email) Local() string { return e.local }

// Domain returns the domain as a [Name].
func (e Email) Domain() Name { return e.domain }

// IsZero reports whether e is the zero Email.
func (e Email) IsZero() bool { return e.local == "" }

// Compare orders addresses by domain first, then local part bytewise.
func (e Email) Compare(other Email) int {
	if c := e.domain.Compare(other.domain); c != 0 {
		return c
	}
	return strings.Compare(e.local, other.local)
}

// MarshalText implements [encoding.TextMarshaler].
func (e Email) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Empty text yields
// the zero Email.
func (e *Email) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*e = Email{}
		return nil
	}
	parsed, err := ParseEmail(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*e = parsed
	return nil
}
