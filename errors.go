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

//go:generate errtrace -w .

import "fmt"

// Error is a sentinel error kind. All errors returned by this package wrap
// one of the Err… constants below, so callers can classify failures with
// errors.Is without inspecting messages.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBadEscape reports a '%' that is not followed by two hexadecimal
	// digits where a percent escape is required to be well formed.
	ErrBadEscape Error = "malformed percent escape"

	// ErrBadEncoding reports percent escapes that decode to a byte
	// sequence which is not valid UTF-8. Decoding is all or nothing;
	// nothing is silently kept encoded to mask the failure.
	ErrBadEncoding Error = "escapes decode to invalid UTF-8"

	// ErrBadSegment reports a segment argument that would change the
	// structure of the address it is spliced into, such as a query
	// containing '#' or a hier-part containing '?'.
	ErrBadSegment Error = "segment would change address structure"

	// ErrBadScheme reports an empty or syntactically invalid scheme name.
	ErrBadScheme Error = "invalid scheme name"
)

func badEscapeError(s string, at int) error {
	return fmt.Errorf("%w at offset %d in %q", ErrBadEscape, at, s) //errtrace:skip
}

func badEncodingError(s string) error {
	return fmt.Errorf("%w in %q", ErrBadEncoding, s) //errtrace:skip
}

func badSegmentError(segment string, delim byte) error {
	return fmt.Errorf("%w: %q must not contain %q", ErrBadSegment, segment, delim) //errtrace:skip
}

func badSchemeError(name string) error {
	return fmt.Errorf("%w: %q", ErrBadScheme, name) //errtrace:skip
}

func ambiguousSegmentError(segment string) error {
	return fmt.Errorf("%w: %q would introduce a scheme", ErrBadSegment, segment) //errtrace:skip
}
