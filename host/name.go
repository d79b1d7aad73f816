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

// Package host provides small comparable value types for DNS domain names
// and email addresses, stored in canonical form.
package host

//go:generate errtrace -w .

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/uriq/uriq/intern"
)

// Error is a sentinel error kind for this package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBadName reports input that is not a well-formed domain name.
	ErrBadName Error = "invalid domain name"

	// ErrBadEmail reports input that is not a well-formed email address.
	ErrBadEmail Error = "invalid email address"
)

func badNameError(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrBadName, s, reason) //errtrace:skip
}

// maxNameLen is the DNS limit on a name without its trailing dot.
const maxNameLen = 253

// maxLabelLen is the DNS limit on a single label.
const maxLabelLen = 63

// Name is a domain name held in its canonical lowercase ASCII (A-label)
// form. Name is comparable; two names are equal exactly when their
// canonical forms are. The zero Name is the empty name.
type Name struct {
	ascii string
}

// ParseName parses s, which may be given in Unicode or already in A-label
// form, into a [Name]. The input is lowercased, mapped to ASCII per IDNA,
// and validated against the letter-digit-hyphen rule: labels of 1 to 63
// bytes, no leading or trailing hyphen, at most 253 bytes overall, and a
// non-numeric final label.
func ParseName(s string) (Name, error) {
	if s == "" {
		return Name{}, errtrace.Wrap(badNameError(s, "empty"))
	}
	ascii, err := idna.ToASCII(strings.ToLower(s))
	if err != nil {
		return Name{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadName, s, err))
	}
	if len(ascii) > maxNameLen {
		return Name{}, errtrace.Wrap(badNameError(s, "longer than 253 bytes"))
	}
	if _, ok := dns.IsDomainName(ascii); !ok {
		return Name{}, errtrace.Wrap(badNameError(s, "not a DNS name"))
	}
	labels := strings.Split(ascii, ".")
	for _, label := range labels {
		if err := checkLabel(label); err != nil {
			return Name{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadName, s, err))
		}
	}
	if allDigits(labels[len(labels)-1]) {
		return Name{}, errtrace.Wrap(badNameError(s, "numeric final label"))
	}
	return Name{ascii: ascii}, nil
}

// MustParseName is like [ParseName] but panics on error. It simplifies
// tests and initialization of well-known names.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func checkLabel(label string) error {
	if label == "" {
		return Error("empty label") //errtrace:skip
	}
	if len(label) > maxLabelLen {
		return Error("label longer than 63 bytes") //errtrace:skip
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return Error("label starts or ends with a hyphen") //errtrace:skip
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '-' {
			continue
		}
		return fmt.Errorf("label byte %q outside letter-digit-hyphen", c) //errtrace:skip
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// String returns the canonical ASCII form, empty for the zero Name.
func (n Name) String() string { return n.ascii }

// Unicode returns the Unicode (U-label) form of the name, falling back to
// the ASCII form when the mapping fails.
func (n Name) Unicode() string {
	if n.ascii == "" {
		return ""
	}
	u, err := idna.ToUnicode(n.ascii)
	if err != nil {
		return n.ascii
	}
	return u
}

// Labels returns the name's labels in left-to-right order, nil for the
// zero Name.
func (n Name) Labels() []string {
	if n.ascii == "" {
		return nil
	}
	return strings.Split(n.ascii, ".")
}

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool { return n.ascii == "" }

// Compare orders names bytewise on their canonical forms, returning -1, 0
// or 1.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.ascii, other.ascii)
}

// Interned returns a Name whose backing string is the canonical instance
// from table. Long-lived collections of names intern them so equal names
// share one allocation; the table is owned by the caller, never global.
func (n Name) Interned(table *intern.Table) Name {
	if n.ascii == "" {
		return n
	}
	return Name{ascii: table.Intern(n.ascii)}
}

// MarshalText implements [encoding.TextMarshaler], emitting the canonical
// ASCII form.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.ascii), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Empty text yields
// the zero Name, so optional fields round-trip.
func (n *Name) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*n = Name{}
		return nil
	}
	parsed, err := ParseName(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*n = parsed
	return nil
}

// Value implements [driver.Valuer].
func (n Name) Value() (driver.Value, error) { return n.ascii, nil }

// Scan implements [database/sql.Scanner] from TEXT/VARCHAR or bytes.
func (n *Name) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return errtrace.Wrap(n.UnmarshalText([]byte(v)))
	case []byte:
		return errtrace.Wrap(n.UnmarshalText(v))
	default:
		return fmt.Errorf("cannot scan %T into a domain name", src) //errtrace:skip
	}
}
