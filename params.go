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

	"braces.dev/errtrace"
)

// ParamSource is an ordered view of query parameters: names in a stable
// order, one or more values per name in a stable order. [Params] is the
// canonical implementation; adapters over other value collections satisfy
// it to feed AddParams on any address form.
type ParamSource interface {
	// Names returns the parameter names in source order. Implementations
	// return a fresh or immutable slice; callers must not mutate it.
	Names() []string
	// Values returns the values recorded for name in source order, nil
	// when the name is unknown.
	Values(name string) []string
}

// Params is a mutable ordered multimap of decoded query parameters. Names
// keep their first-insertion order, values keep insertion order within
// each name, and a present name always carries at least one value. Names
// are opaque case-sensitive strings.
//
// The zero value is not ready for use; start from [NewParams] or
// [ParseParams]. Unlike the address types, Params is a builder and is not
// safe for concurrent mutation.
type Params struct {
	names  []string
	values map[string][]string
}

// NewParams returns an empty parameter map.
func NewParams() *Params {
	return &Params{values: make(map[string][]string)}
}

// ParseParams parses a raw query string ("a=1&b=2&a=3") into a parameter
// map. Pairs are split on '&', each pair on its first '=' only, and both
// sides are decoded with [DecodeComponent], so "%26" arrives as a literal
// '&' in a value rather than as a separator. A pair without '=' records
// the empty-string value; empty pairs ("a=1&&b=2") are skipped.
func ParseParams(query string) (*Params, error) {
	p := NewParams()
	for chunk := range strings.SplitSeq(query, "&") {
		if chunk == "" {
			continue
		}
		name, value, _ := strings.Cut(chunk, "=")
		dn, err := DecodeComponent(name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		dv, err := DecodeComponent(value)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p.Add(dn, dv)
	}
	return p, nil
}

// Add records value under name, appending to any values already present.
// It returns p for chaining.
func (p *Params) Add(name, value string) *Params {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = append(p.values[name], value)
	return p
}

// Get returns the first value recorded for name and whether the name is
// present at all.
func (p *Params) Get(name string) (string, bool) {
	vs := p.values[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns all values recorded for name in insertion order, nil when
// the name is unknown. The returned slice is a copy.
func (p *Params) Values(name string) []string {
	vs := p.values[name]
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Names returns the parameter names in first-insertion order. The returned
// slice is a copy.
func (p *Params) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Len returns the number of distinct names.
func (p *Params) Len() int { return len(p.names) }

// Encode serializes the map back to a raw query string: names in
// first-insertion order, values in insertion order within each name, both
// sides percent-encoded with [EncodeComponent] and every pair joined as
// "name=value" with '&'. Parsing a query and encoding it again is
// loss-free up to escape canonicalization.
func (p *Params) Encode() string {
	var b strings.Builder
	for _, name := range p.names {
		for _, v := range p.values[name] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(EncodeComponent(name))
			b.WriteByte('=')
			b.WriteString(EncodeComponent(v))
		}
	}
	return b.String()
}

// String implements [fmt.Stringer] as an alias of [Params.Encode].
func (p *Params) String() string { return p.Encode() }

// paramChunk assembles one encoded name=value pair.
func paramChunk(name, value string) string {
	return EncodeComponent(name) + "=" + EncodeComponent(value)
}

// paramSourceChunk flattens an entire parameter source into one encoded
// query chunk, skipping empty names and names without values.
func paramSourceChunk(src ParamSource) string {
	var b strings.Builder
	for _, name := range src.Names() {
		if name == "" {
			continue
		}
		for _, v := range src.Values(name) {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(EncodeComponent(name))
			b.WriteByte('=')
			b.WriteString(EncodeComponent(v))
		}
	}
	return b.String()
}
