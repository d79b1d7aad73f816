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

// Any is an address held exactly as the caller supplied it, in any mix of
// encoded and decoded characters. It applies no encoding of its own:
// segment mutators store their arguments verbatim, and only AddParam runs
// its name and value through [EncodeComponent] so that arbitrary data
// cannot masquerade as query structure.
//
// Any is immutable. Mutators return a new instance, or the receiver itself
// when the requested change is a no-op, so pointer equality doubles as a
// cheap "did anything change" signal. Instances are safe for concurrent
// use; the lazily built projections ([Any.URI], [Any.IRI]) are cached with
// atomic publication and may be computed more than once under a race, each
// result being equally valid.
type Any struct {
	core
	uri atomic.Pointer[URI]
	iri atomic.Pointer[IRI]
}

// Parse splits s into an [Any]. It never fails: splitting is a total,
// best-effort operation and malformed input simply lands in whichever
// segment the delimiter scan assigns it to.
func Parse(s string) *Any {
	return &Any{core: parseCore(s)}
}

// Equal reports whether both addresses hold byte-identical text.
func (a *Any) Equal(other *Any) bool {
	return other != nil && a.text == other.text
}

// URI returns the ASCII projection of the address, computing and caching
// it on first use.
func (a *Any) URI() *URI {
	if u := a.uri.Load(); u != nil {
		return u
	}
	u := ParseURI(a.text)
	if !a.uri.CompareAndSwap(nil, u) {
		return a.uri.Load()
	}
	return u
}

// IRI returns the Unicode projection of the address, computing and caching
// it on first use. Decoding failures are reported and nothing is cached,
// so a later call after the race for the cache is equally strict.
func (a *Any) IRI() (*IRI, error) {
	if i := a.iri.Load(); i != nil {
		return i, nil
	}
	i, err := ParseIRI(a.text)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !a.iri.CompareAndSwap(nil, i) {
		return a.iri.Load(), nil
	}
	return i, nil
}

// Params parses the current query into a fresh [Params] multimap. An
// absent query yields an empty map.
func (a *Any) Params() (*Params, error) {
	q, _ := a.Query()
	return errtrace.Wrap2(ParseParams(q))
}

// WithScheme returns an address with the scheme replaced by name, which
// must satisfy the RFC 3986 scheme grammar.
func (a *Any) WithScheme(name string) (*Any, error) {
	c, changed, err := a.core.setScheme(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return a, nil
	}
	return &Any{core: c}, nil
}

// WithoutScheme returns the address with its scheme removed. The remainder
// must not itself re-parse as carrying a scheme; "mailto:a:b" cannot drop
// its scheme because "a:b" would then read as scheme "a".
func (a *Any) WithoutScheme() (*Any, error) {
	c, changed, err := a.core.dropScheme()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return a, nil
	}
	return &Any{core: c}, nil
}

// WithHierPart returns an address with the hier-part replaced by seg,
// stored exactly as given. seg must not contain '?' or '#', and on a
// schemeless address it must not begin with anything that would re-parse
// as a scheme.
func (a *Any) WithHierPart(seg string) (*Any, error) {
	c, changed, err := a.core.setHier(seg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return a, nil
	}
	return &Any{core: c}, nil
}

// WithQuery returns an address whose query is exactly seg, which must not
// contain '#'. An empty seg yields a present-but-empty query ("/p?");
// removing the query entirely is [Any.WithoutQuery].
func (a *Any) WithQuery(seg string) (*Any, error) {
	c, changed, err := a.core.setQuery(seg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return a, nil
	}
	return &Any{core: c}, nil
}

// WithoutQuery returns the address with its query (and its '?') removed.
func (a *Any) WithoutQuery() *Any {
	c, changed := a.core.dropQuery()
	if !changed {
		return a
	}
	return &Any{core: c}
}

// AddQuery appends chunk to the query, joined with '&' when a query is
// already present and introduced with '?' otherwise. chunk is stored
// verbatim and must not contain '#'; an empty chunk is a no-op.
func (a *Any) AddQuery(chunk string) (*Any, error) {
	c, changed, err := a.core.addQuery(chunk)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !changed {
		return a, nil
	}
	return &Any{core: c}, nil
}

// AddParam appends one name=value pair to the query. Both sides go through
// [EncodeComponent], so they arrive as data no matter what they contain.
// An empty name is a no-op. Bare valueless flags are appended with
// [Any.AddQuery].
func (a *Any) AddParam(name, value string) (*Any, error) {
	if name == "" {
		return a, nil
	}
	return errtrace.Wrap2(a.AddQuery(paramChunk(name, value)))
}

// AddParams appends every pair of src in source order, names first, values
// in order within each name. The whole set is spliced in as one chunk.
func (a *Any) AddParams(src ParamSource) (*Any, error) {
	return errtrace.Wrap2(a.AddQuery(paramSourceChunk(src)))
}

// WithFragment returns an address whose fragment is exactly seg. There is
// no forbidden character: everything after the first '#' is fragment, so
// even a '#' inside seg cannot change the structure.
func (a *Any) WithFragment(seg string) *Any {
	c, changed := a.core.setFragment(seg)
	if !changed {
		return a
	}
	return &Any{core: c}
}

// WithoutFragment returns the address with its fragment (and its '#')
// removed.
func (a *Any) WithoutFragment() *Any {
	c, changed := a.core.dropFragment()
	if !changed {
		return a
	}
	return &Any{core: c}
}

// MarshalText implements [encoding.TextMarshaler], emitting the raw text.
func (a *Any) MarshalText() ([]byte, error) {
	return []byte(a.text), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], re-splitting the
// receiver in place and discarding any cached projections.
func (a *Any) UnmarshalText(text []byte) error {
	a.core = parseCore(string(text))
	a.uri.Store(nil)
	a.iri.Store(nil)
	return nil
}
