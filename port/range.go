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
	"fmt"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Range is an inclusive span of ports, Lo through Hi. A single port is the
// range with Lo == Hi. The zero Range is invalid (ports are 1-based).
type Range struct {
	Lo, Hi Port
}

// NewRange builds a range from two ports in either order.
func NewRange(a, b Port) (Range, error) {
	if !a.Valid() || !b.Valid() {
		return Range{}, errtrace.Wrap(fmt.Errorf("%w: zero port", ErrBadRange))
	}
	if b < a {
		a, b = b, a
	}
	return Range{Lo: a, Hi: b}, nil
}

// ParseRange parses "80" (a single-port range) or "8000-9000". The bounds
// must be ordered; "9000-8000" is rejected rather than silently swapped.
func ParseRange(s string) (Range, error) {
	lo, hi, dashed := strings.Cut(s, "-")
	l, err := ParsePort(lo)
	if err != nil {
		return Range{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadRange, s, err))
	}
	if !dashed {
		return Range{Lo: l, Hi: l}, nil
	}
	h, err := ParsePort(hi)
	if err != nil {
		return Range{}, errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrBadRange, s, err))
	}
	if h < l {
		return Range{}, errtrace.Wrap(fmt.Errorf("%w %q: bounds out of order", ErrBadRange, s))
	}
	return Range{Lo: l, Hi: h}, nil
}

// MustParseRange is like [ParseRange] but panics on error.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Valid reports whether r is a well-formed range.
func (r Range) Valid() bool { return r.Lo.Valid() && r.Lo <= r.Hi }

// Len returns the number of ports in the range.
func (r Range) Len() int { return int(r.Hi) - int(r.Lo) + 1 }

// Contains reports whether p falls inside the range.
func (r Range) Contains(p Port) bool { return r.Lo <= p && p <= r.Hi }

// Overlaps reports whether the two ranges share at least one port.
func (r Range) Overlaps(other Range) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Adjacent reports whether the two ranges touch without overlapping, like
// 80-99 and 100-120.
func (r Range) Adjacent(other Range) bool {
	return int(r.Hi)+1 == int(other.Lo) || int(other.Hi)+1 == int(r.Lo)
}

// Union merges two overlapping or adjacent ranges into their combined
// span; ok is false when a gap separates them.
func (r Range) Union(other Range) (Range, bool) {
	if !r.Overlaps(other) && !r.Adjacent(other) {
		return Range{}, false
	}
	return Range{Lo: min(r.Lo, other.Lo), Hi: max(r.Hi, other.Hi)}, true
}

// String returns "80" for single-port ranges and "8000-9000" otherwise.
func (r Range) String() string {
	if r.Lo == r.Hi {
		return r.Lo.String()
	}
	return r.Lo.String() + "-" + r.Hi.String()
}

// Compare orders ranges by lower bound, then by upper bound.
func (r Range) Compare(other Range) int {
	if r.Lo != other.Lo {
		if r.Lo < other.Lo {
			return -1
		}
		return 1
	}
	switch {
	case r.Hi < other.Hi:
		return -1
	case r.Hi > other.Hi:
		return 1
	}
	return 0
}

// Coalesce sorts ranges and merges every overlapping or adjacent pair,
// returning a minimal ascending list covering the same ports. The input is
// not modified; invalid ranges are dropped.
func Coalesce(ranges []Range) []Range {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Valid() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, Range.Compare)

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if merged, ok := last.Union(r); ok {
			*last = merged
			continue
		}
		out = append(out, r)
	}
	return out
}
