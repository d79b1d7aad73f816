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

// Package dto provides a flat transfer record for addresses, with the
// query exploded into decoded name/value parameters, plus the codecs that
// serialize it. It sits at system boundaries; inside a program the
// uriq address types themselves are the representation.
package dto

//go:generate errtrace -w .

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"

	"github.com/uriq/uriq"
)

// Error is a sentinel error kind for this package.
type Error string

func (e Error) Error() string { return string(e) }

// ErrInvalid reports a transfer record that cannot become an address.
const ErrInvalid Error = "invalid address record"

// Param is one query parameter: a decoded name and its decoded values in
// order.
type Param struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Address is the transfer shape of an address. Unlike the uriq types it is
// mutable, field-addressable and decoded: the query lives as parameters,
// not as an encoded string. A nil Fragment means no fragment at all, as
// opposed to an empty one.
//
// A present-but-empty query ("/p?") and bare valueless query flags do not
// survive the trip through Params; consumers needing those shapes exchange
// the address text instead.
type Address struct {
	Scheme   string  `json:"scheme,omitempty"`
	HierPart string  `json:"hier_part"`
	Params   []Param `json:"params,omitempty"`
	Fragment *string `json:"fragment,omitempty"`
}

// Validate checks that the record can be assembled into an address: the
// scheme, if present, matches the scheme grammar; the hier-part smuggles
// no '?' or '#'; every parameter has a name and at least one value.
func (a *Address) Validate() error {
	if a.Scheme != "" && !validScheme(a.Scheme) {
		return errtrace.Wrap(fmt.Errorf("%w: scheme %q", ErrInvalid, a.Scheme))
	}
	if i := strings.IndexAny(a.HierPart, "?#"); i >= 0 {
		return errtrace.Wrap(fmt.Errorf("%w: hier-part contains %q", ErrInvalid, a.HierPart[i]))
	}
	for _, p := range a.Params {
		if p.Name == "" {
			return errtrace.Wrap(fmt.Errorf("%w: parameter without a name", ErrInvalid))
		}
		if len(p.Values) == 0 {
			return errtrace.Wrap(fmt.Errorf("%w: parameter %q without values", ErrInvalid, p.Name))
		}
	}
	return nil
}

func validScheme(s string) bool {
	if s == "" || !isALPHA(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isALPHA(c) && (c < '0' || c > '9') && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isALPHA(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// FromURI flattens u into a transfer record: the query is parsed and
// decoded into parameters, everything else is carried as-is.
func FromURI(u *uriq.URI) (*Address, error) {
	params, err := u.Params()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	a := &Address{HierPart: u.HierPart()}
	if s, ok := u.Scheme(); ok {
		a.Scheme = s
	}
	for _, name := range params.Names() {
		a.Params = append(a.Params, Param{Name: name, Values: params.Values(name)})
	}
	if f, ok := u.Fragment(); ok {
		a.Fragment = &f
	}
	return a, nil
}

// URI assembles the record back into an address: parameters are re-encoded
// in record order and appended as the query. The result equals the
// original up to escape canonicalization and the query shapes Address
// cannot carry.
func (a *Address) URI() (*uriq.URI, error) {
	if err := a.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	// The scheme goes on first: a hier-part like "a:b" is unambiguous
	// after a real scheme but would itself read as one on a schemeless
	// address.
	u := uriq.ParseURI("")
	var err error
	if a.Scheme != "" {
		if u, err = u.WithScheme(a.Scheme); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if u, err = u.WithHierPart(a.HierPart); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(a.Params) > 0 {
		src := uriq.NewParams()
		for _, p := range a.Params {
			for _, v := range p.Values {
				src.Add(p.Name, v)
			}
		}
		if u, err = u.AddParams(src); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if a.Fragment != nil {
		u = u.WithFragment(*a.Fragment)
	}
	return u, nil
}
