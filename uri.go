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
)

// URI is the ASCII (RFC 3986) form of an address: by construction its text
// is strict percent-encoded ASCII. Every constructor and mutator argument
// passes through the whole-address encoder, which escapes what must be
// escaped, uppercases the hex of escapes already present, and never
// double-encodes.
//
// URI is immutable and safe for concurrent use; see [Any] for the mutation
// and caching discipline shared by all three forms.
type URI struct {
	core
	normalized bool
	iri        atomic.Pointer[IRI]
}

// ParseURI encodes s into its ASCII form and splits it. Whole-address
// encoding is total, so unlike [ParseIRI] this cannot fail.
func ParseURI(s string) *URI {
	return &URI{core: parseCore(encodeAddress(s))}
}

// Normalized reports whether the text is known to be the canonical ASCII
// form: true for addresses produced from an [IRI], preserved across
// mutations whose arguments were already canonical, and false otherwise.
func (u *URI) Normalized() bool { return u.normalized }

// Equal reports whether both addresses hold byte-identical text.
func (u *URI) Equal(other *URI) bool {
	return other != nil && u.text == other.text
}

// IRI returns the Unicode projection, computing and caching it on first
// use. The two instances back-reference each other, so converting there
// and back yields the original pointer without recomputing.
func (u *URI) IRI() (*IRI, error) {
	if i := u.iri.Load(); i != nil {
		return i, nil
	}
	dec, err := decodeAddress(u.text)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	i := &IRI{core: parseCore(dec)}
	i.uri.Store(u)
	if !u.iri.CompareAndSwap(nil, i) {
		return u.iri.Load(), nil
	}
	return i, nil
}

// Params parses the current query into a fresh [Params] multimap.
func (u *URI) Params() (*Params, error) {
	q, _ := u.Query()
	return errtrace.Wrap2(ParseParams(q))
}

// derive wraps a successfully spliced core, carrying the normalized flag
// forward only when the transformed segment was already canonical.
func (u *URI) derive(c core, segCanonical bool) *URI {
	return &URI{core: c, normalized: u.normalized && segCanonical}
}

// WithScheme returns an address with the scheme replaced by name. Scheme
// names are pure ASCII grammar, so no encoding applies.
func (u *URI) WithScheme(name string) (*URI, error) {
	c, changed, err := u.core.setScheme(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return u, nil
	}
	return u.derive(c, true), nil
}

// WithoutScheme returns the address with its scheme removed; see
// [Any.WithoutScheme] for the ambiguity rule.
func (u *URI) WithoutScheme() (*URI, error) {
	c, changed, err := u.core.dropScheme()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return u, nil
	}
	return u.derive(c, true), nil
}

// WithHierPart returns an address with the hier-part replaced by the
// encoded form of seg. The encoded segment must not contain '?' or '#';
// both pass the encoder untouched, so smuggling them in data is caught.
func (u *URI) WithHierPart(seg string) (*URI, error) {
	enc := encodeAddress(seg)
	c, changed, err := u.core.setHier(enc)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return u, nil
	}
	return u.derive(c, enc == seg), nil
}

// WithQuery returns an address whose query is the encoded form of seg.
func (u *URI) WithQuery(seg string) (*URI, error) {
	enc := encodeAddress(seg)
	c, changed, err := u.core.setQuery(enc)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return u, nil
	}
	return u.derive(c, enc == seg), nil
}

// WithoutQuery returns the address with its query removed.
func (u *URI) WithoutQuery() *URI {
	c, changed := u.core.dropQuery()
	if !changed {
		return u
	}
	return u.derive(c, true)
}

// AddQuery appends the encoded form of chunk to the query; see
// [Any.AddQuery] for the joining rule.
func (u *URI) AddQuery(chunk string) (*URI, error) {
	enc := encodeAddress(chunk)
	c, changed, err := u.core.addQuery(enc)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return u, nil
	}
	return u.derive(c, enc == chunk), nil
}

// AddParam appends one name=value pair; both sides go through
// [EncodeComponent], which already yields canonical ASCII.
func (u *URI) AddParam(name, value string) (*URI, error) {
	if name == "" {
		return u, nil
	}
	return errtrace.Wrap2(u.AddQuery(paramChunk(name, value)))
}

// AddParams appends every pair of src in source order as one chunk.
func (u *URI) AddParams(src ParamSource) (*URI, error) {
	return errtrace.Wrap2(u.AddQuery(paramSourceChunk(src)))
}

// WithFragment returns an address whose fragment is the encoded form of
// seg.
func (u *URI) WithFragment(seg string) *URI {
	enc := encodeAddress(seg)
	c, changed := u.core.setFragment(enc)
	if !changed {
		return u
	}
	return u.derive(c, enc == seg)
}

// WithoutFragment returns the address with its fragment removed.
func (u *URI) WithoutFragment() *URI {
	c, changed := u.core.dropFragment()
	if !changed {
		return u
	}
	return u.derive(c, true)
}

// MarshalText implements [encoding.TextMarshaler], emitting the encoded
// text.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.text), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], re-encoding and
// re-splitting the receiver in place.
func (u *URI) UnmarshalText(text []byte) error {
	u.core = parseCore(encodeAddress(string(text)))
	u.normalized = false
	u.iri.Store(nil)
	return nil
}
