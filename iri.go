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
	"sync/atomic"

	"braces.dev/errtrace"
	"golang.org/x/text/unicode/norm"
)

// IRI is the Unicode (RFC 3987) form of an address: human-readable
// characters are decoded while '%' and anything that could be mistaken for
// a delimiter stay percent-encoded, so "%C3%A9" reads as "é" but "%2F"
// never turns into a '/'. Every constructor and mutator argument passes
// through the whole-address decoder, and decoding is strict: malformed
// escapes and escapes yielding invalid UTF-8 are errors, never passed
// through quietly.
//
// IRI is immutable and safe for concurrent use; see [Any] for the mutation
// and caching discipline shared by all three forms.
type IRI struct {
	core
	uri atomic.Pointer[URI]
}

// ParseIRI decodes s into its Unicode form and splits it.
func ParseIRI(s string) (*IRI, error) {
	dec, err := decodeAddress(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &IRI{core: parseCore(dec)}, nil
}

// Equal reports whether both addresses hold byte-identical text.
func (i *IRI) Equal(other *IRI) bool {
	return other != nil && i.text == other.text
}

// URI returns the ASCII projection, computing and caching it on first use.
// The result is marked normalized: encoding a decoded address yields the
// canonical form. The two instances back-reference each other, so
// converting there and back yields the original pointer without
// recomputing.
func (i *IRI) URI() *URI {
	if u := i.uri.Load(); u != nil {
		return u
	}
	u := &URI{core: parseCore(encodeAddress(i.text)), normalized: true}
	u.iri.Store(i)
	if !i.uri.CompareAndSwap(nil, u) {
		return i.uri.Load()
	}
	return u
}

// Normalize returns an address with the text in Unicode Normalization Form
// C, or the receiver itself when it already is. NFC only recomposes
// non-ASCII sequences, so the decoded canon is preserved; the delimiters
// are re-located because byte positions may shift.
func (i *IRI) Normalize() *IRI {
	if norm.NFC.IsNormalString(i.text) {
		return i
	}
	return &IRI{core: parseCore(norm.NFC.String(i.text))}
}

// Params parses the current query into a fresh [Params] multimap.
func (i *IRI) Params() (*Params, error) {
	q, _ := i.Query()
	return errtrace.Wrap2(ParseParams(q))
}

// WithScheme returns an address with the scheme replaced by name. Scheme
// names are pure ASCII grammar, so no decoding applies.
func (i *IRI) WithScheme(name string) (*IRI, error) {
	c, changed, err := i.core.setScheme(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// WithoutScheme returns the address with its scheme removed; see
// [Any.WithoutScheme] for the ambiguity rule.
func (i *IRI) WithoutScheme() (*IRI, error) {
	c, changed, err := i.core.dropScheme()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// WithHierPart returns an address with the hier-part replaced by the
// decoded form of seg.
func (i *IRI) WithHierPart(seg string) (*IRI, error) {
	dec, err := decodeAddress(seg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c, changed, err := i.core.setHier(dec)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// WithQuery returns an address whose query is the decoded form of seg.
func (i *IRI) WithQuery(seg string) (*IRI, error) {
	dec, err := decodeAddress(seg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c, changed, err := i.core.setQuery(dec)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// WithoutQuery returns the address with its query removed.
func (i *IRI) WithoutQuery() *IRI {
	c, changed := i.core.dropQuery()
	if !changed {
		return i
	}
	return &IRI{core: c}
}

// AddQuery appends the decoded form of chunk to the query; see
// [Any.AddQuery] for the joining rule.
func (i *IRI) AddQuery(chunk string) (*IRI, error) {
	dec, err := decodeAddress(chunk)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c, changed, err := i.core.addQuery(dec)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// AddParam appends one name=value pair. Both sides go through
// [EncodeComponent] first and the assembled chunk is then decoded, so data
// that reads well comes out readable ("é" stays "é") while escaped
// delimiters stay escaped.
func (i *IRI) AddParam(name, value string) (*IRI, error) {
	if name == "" {
		return i, nil
	}
	return errtrace.Wrap2(i.AddQuery(paramChunk(name, value)))
}

// AddParams appends every pair of src in source order as one chunk.
func (i *IRI) AddParams(src ParamSource) (*IRI, error) {
	return errtrace.Wrap2(i.AddQuery(paramSourceChunk(src)))
}

// WithFragment returns an address whose fragment is the decoded form of
// seg.
func (i *IRI) WithFragment(seg string) (*IRI, error) {
	dec, err := decodeAddress(seg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c, changed := i.core.setFragment(dec)
	if !changed {
		return i, nil
	}
	return &IRI{core: c}, nil
}

// WithoutFragment returns the address with its fragment removed.
func (i *IRI) WithoutFragment() *IRI {
	c, changed := i.core.dropFragment()
	if !changed {
		return i
	}
	return &IRI{core: c}
}

// MarshalText implements [encoding.TextMarshaler], emitting the decoded
// text.
func (i *IRI) MarshalText() ([]byte, error) {
	return []byte(i.text), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], re-decoding and
// re-splitting the receiver in place.
func (i *IRI) UnmarshalText(text []byte) error {
	dec, err := decodeAddress(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	i.core = parseCore(dec)
	i.uri.Store(nil)
	return nil
}
