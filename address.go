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

import "strings"

// core is the shared value underlying [Any], [URI] and [IRI]: the raw text
// of the address plus the byte positions of its three structural
// delimiters, -1 when a part is absent.
//
//   - schemeLen: position of the ':' ending a well-formed scheme prefix,
//     which equals the scheme name's length.
//   - queryAt: position of the '?' introducing the query.
//   - fragmentAt: position of the '#' introducing the fragment.
//
// The indices are a pure cache of splitAddress(text). Mutations splice the
// text and shift the indices arithmetically instead of re-splitting; every
// path that could make the two disagree is rejected up front (see
// checkHierSegment and checkQuerySegment), and builds tagged uriqdebug
// re-verify after each splice.
//
// Segment accessors slice the text lazily and never allocate.
type core struct {
	text       string
	schemeLen  int
	queryAt    int
	fragmentAt int
}

func parseCore(s string) core {
	sl, qa, fa := splitAddress(s)
	return core{text: s, schemeLen: sl, queryAt: qa, fragmentAt: fa}
}

// String returns the full address text.
func (c core) String() string { return c.text }

// IsAbsolute reports whether the address carries a scheme.
func (c core) IsAbsolute() bool { return c.schemeLen >= 0 }

// Scheme returns the scheme name, without the trailing ':', and whether one
// is present.
func (c core) Scheme() (string, bool) {
	if c.schemeLen < 0 {
		return "", false
	}
	return c.text[:c.schemeLen], true
}

// SchemeIs reports whether the address carries the scheme name, compared
// ASCII case-insensitively. An empty or malformed name wraps
// [ErrBadScheme]; scheme names are usage input here, never data.
func (c core) SchemeIs(name string) (bool, error) {
	if !validSchemeName(name) {
		return false, badSchemeError(name)
	}
	s, ok := c.Scheme()
	if !ok || len(s) != len(name) {
		return false, nil
	}
	for i := 0; i < len(name); i++ {
		if lowerASCII(s[i]) != lowerASCII(name[i]) {
			return false, nil
		}
	}
	return true, nil
}

// HierPart returns everything between the scheme and the first '?' or '#':
// for "http://ex.com/p?q=1" that is "//ex.com/p". It may be empty.
func (c core) HierPart() string {
	return c.text[c.hierStart():c.hierEnd()]
}

// Query returns the query text without its leading '?', and whether a query
// is present. A present query may be empty.
func (c core) Query() (string, bool) {
	if c.queryAt < 0 {
		return "", false
	}
	end := len(c.text)
	if c.fragmentAt >= 0 {
		end = c.fragmentAt
	}
	return c.text[c.queryAt+1 : end], true
}

// Fragment returns the fragment text without its leading '#', and whether a
// fragment is present.
func (c core) Fragment() (string, bool) {
	if c.fragmentAt < 0 {
		return "", false
	}
	return c.text[c.fragmentAt+1:], true
}

// hierStart exploits the -1 sentinel: with no scheme it yields 0, with a
// scheme it skips the ':'.
func (c core) hierStart() int { return c.schemeLen + 1 }

func (c core) hierEnd() int {
	if c.queryAt >= 0 {
		return c.queryAt
	}
	if c.fragmentAt >= 0 {
		return c.fragmentAt
	}
	return len(c.text)
}

// spliceText replaces text[from:to] with a+b in a single exact-size
// allocation.
func (c core) spliceText(from, to int, a, b string) string {
	buf := make([]byte, 0, len(c.text)-(to-from)+len(a)+len(b))
	buf = append(buf, c.text[:from]...)
	buf = append(buf, a...)
	buf = append(buf, b...)
	buf = append(buf, c.text[to:]...)
	return string(buf)
}

// checkQuerySegment rejects query text that would terminate the query early
// by opening a fragment.
func checkQuerySegment(seg string) error {
	if strings.IndexByte(seg, '#') >= 0 {
		return badSegmentError(seg, '#')
	}
	return nil
}

// checkHierSegment rejects hier-part text that would open a query or
// fragment, and, on a schemeless address, text whose prefix would re-parse
// as a scheme.
func checkHierSegment(seg string, schemeless bool) error {
	if i := strings.IndexAny(seg, "?#"); i >= 0 {
		return badSegmentError(seg, seg[i])
	}
	if schemeless && scanScheme(seg) >= 0 {
		return ambiguousSegmentError(seg)
	}
	return nil
}

func (c core) setHier(seg string) (core, bool, error) {
	if err := checkHierSegment(seg, c.schemeLen < 0); err != nil {
		return c, false, err
	}
	from, to := c.hierStart(), c.hierEnd()
	if c.text[from:to] == seg {
		return c, false, nil
	}
	delta := len(seg) - (to - from)
	out := c
	out.text = c.spliceText(from, to, seg, "")
	if out.queryAt >= 0 {
		out.queryAt += delta
	}
	if out.fragmentAt >= 0 {
		out.fragmentAt += delta
	}
	out.assertConsistent()
	return out, true, nil
}

func (c core) setQuery(seg string) (core, bool, error) {
	if err := checkQuerySegment(seg); err != nil {
		return c, false, err
	}
	out := c
	if c.queryAt >= 0 {
		from := c.queryAt + 1
		to := len(c.text)
		if c.fragmentAt >= 0 {
			to = c.fragmentAt
		}
		if c.text[from:to] == seg {
			return c, false, nil
		}
		out.text = c.spliceText(from, to, seg, "")
		if out.fragmentAt >= 0 {
			out.fragmentAt += len(seg) - (to - from)
		}
	} else {
		at := len(c.text)
		if c.fragmentAt >= 0 {
			at = c.fragmentAt
		}
		out.text = c.spliceText(at, at, "?", seg)
		out.queryAt = at
		if out.fragmentAt >= 0 {
			out.fragmentAt += 1 + len(seg)
		}
	}
	out.assertConsistent()
	return out, true, nil
}

func (c core) dropQuery() (core, bool) {
	if c.queryAt < 0 {
		return c, false
	}
	out := c
	if c.fragmentAt < 0 {
		out.text = c.text[:c.queryAt]
	} else {
		out.text = c.spliceText(c.queryAt, c.fragmentAt, "", "")
		out.fragmentAt -= c.fragmentAt - c.queryAt
	}
	out.queryAt = -1
	out.assertConsistent()
	return out, true
}

func (c core) addQuery(chunk string) (core, bool, error) {
	if err := checkQuerySegment(chunk); err != nil {
		return c, false, err
	}
	if chunk == "" {
		return c, false, nil
	}
	at := len(c.text)
	if c.fragmentAt >= 0 {
		at = c.fragmentAt
	}
	out := c
	sep := "&"
	if c.queryAt < 0 {
		sep = "?"
		out.queryAt = at
	}
	out.text = c.spliceText(at, at, sep, chunk)
	if out.fragmentAt >= 0 {
		out.fragmentAt += 1 + len(chunk)
	}
	out.assertConsistent()
	return out, true, nil
}

func (c core) setFragment(seg string) (core, bool) {
	out := c
	if c.fragmentAt >= 0 {
		from := c.fragmentAt + 1
		if c.text[from:] == seg {
			return c, false
		}
		out.text = c.spliceText(from, len(c.text), seg, "")
	} else {
		out.fragmentAt = len(c.text)
		out.text = c.text + "#" + seg
	}
	out.assertConsistent()
	return out, true
}

func (c core) dropFragment() (core, bool) {
	if c.fragmentAt < 0 {
		return c, false
	}
	out := c
	out.text = c.text[:c.fragmentAt]
	out.fragmentAt = -1
	out.assertConsistent()
	return out, true
}

func (c core) setScheme(name string) (core, bool, error) {
	if !validSchemeName(name) {
		return c, false, badSchemeError(name)
	}
	out := c
	if c.schemeLen >= 0 {
		if c.text[:c.schemeLen] == name {
			return c, false, nil
		}
		delta := len(name) - c.schemeLen
		out.text = c.spliceText(0, c.schemeLen, name, "")
		out.schemeLen = len(name)
		if out.queryAt >= 0 {
			out.queryAt += delta
		}
		if out.fragmentAt >= 0 {
			out.fragmentAt += delta
		}
	} else {
		out.text = c.spliceText(0, 0, name, ":")
		out.schemeLen = len(name)
		if out.queryAt >= 0 {
			out.queryAt += len(name) + 1
		}
		if out.fragmentAt >= 0 {
			out.fragmentAt += len(name) + 1
		}
	}
	out.assertConsistent()
	return out, true, nil
}

func (c core) dropScheme() (core, bool, error) {
	if c.schemeLen < 0 {
		return c, false, nil
	}
	cut := c.schemeLen + 1
	rest := c.text[cut:]
	if scanScheme(rest) >= 0 {
		return c, false, ambiguousSegmentError(rest)
	}
	out := c
	out.text = rest
	out.schemeLen = -1
	if out.queryAt >= 0 {
		out.queryAt -= cut
	}
	if out.fragmentAt >= 0 {
		out.fragmentAt -= cut
	}
	out.assertConsistent()
	return out, true, nil
}
