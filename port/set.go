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

package port

import (
	"iter"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/uriq/uriq"
)

// Set is a mutable set of ports backed by a roaring bitmap, compact for
// both sparse picks and wide ranges. The zero value is not ready for use;
// start from [NewSet]. Set is a builder and is not safe for concurrent
// mutation.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet returns an empty port set, seeded with any given ranges.
func NewSet(ranges ...Range) *Set {
	s := &Set{rb: roaring.New()}
	for _, r := range ranges {
		s.AddRange(r)
	}
	return s
}

// Add inserts a single port; the zero port is ignored.
func (s *Set) Add(p Port) {
	if p.Valid() {
		s.rb.Add(uint32(p))
	}
}

// AddRange inserts every port of r; invalid ranges are ignored.
func (s *Set) AddRange(r Range) {
	if !r.Valid() {
		return
	}
	// roaring's AddRange is exclusive of the upper bound.
	s.rb.AddRange(uint64(r.Lo), uint64(r.Hi)+1)
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p Port) bool {
	return p.Valid() && s.rb.Contains(uint32(p))
}

// Len returns the number of ports in the set.
func (s *Set) Len() int { return int(s.rb.GetCardinality()) }

// IsEmpty reports whether the set holds no ports.
func (s *Set) IsEmpty() bool { return s.rb.IsEmpty() }

// All returns an iterator over the ports in ascending order.
func (s *Set) All() iter.Seq[Port] {
	return func(yield func(Port) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(Port(it.Next())) {
				return
			}
		}
	}
}

// Ranges returns the set's contents as a minimal ascending list of
// inclusive ranges, consecutive ports merged.
func (s *Set) Ranges() []Range {
	var out []Range
	for p := range s.All() {
		if n := len(out); n > 0 && out[n-1].Hi+1 == p {
			out[n-1].Hi = p
			continue
		}
		out = append(out, Range{Lo: p, Hi: p})
	}
	return out
}

// String returns the coalesced range list joined with commas, like
// "80,443,8000-8100". The empty set is the empty string.
func (s *Set) String() string {
	var b strings.Builder
	for _, r := range s.Ranges() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// query adapts a port set to the parameter-source shape: one name, one
// value per coalesced range.
type query struct {
	name   string
	ranges []Range
}

// Query exposes s under name as an ordered parameter source for
// [uriq.ParamSource] consumers, so an address can grow one query parameter
// per coalesced range:
//
//	a.AddParams(port.Query("p", set))  // /svc?p=80&p=8000-8100
//
// The ranges are captured when Query is called; later mutations of s do
// not show through.
func Query(name string, s *Set) uriq.ParamSource {
	return query{name: name, ranges: s.Ranges()}
}

func (q query) Names() []string {
	if len(q.ranges) == 0 {
		return nil
	}
	return []string{q.name}
}

func (q query) Values(name string) []string {
	if name != q.name || len(q.ranges) == 0 {
		return nil
	}
	out := make([]string, len(q.ranges))
	for i, r := range q.ranges {
		out[i] = r.String()
	}
	return out
}
