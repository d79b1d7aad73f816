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
	"database/sql/driver"
	"fmt"

	"braces.dev/errtrace"
)

// SQL interop for the three address forms: each stores as its text and
// scans from TEXT/VARCHAR (or bytes) through its own constructor, so a
// value read back from a database satisfies the same canon as one built in
// memory.

// Value implements [driver.Valuer].
func (a *Any) Value() (driver.Value, error) { return a.text, nil }

// Scan implements [database/sql.Scanner].
func (a *Any) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(a.UnmarshalText([]byte(s)))
}

// Value implements [driver.Valuer].
func (u *URI) Value() (driver.Value, error) { return u.text, nil }

// Scan implements [database/sql.Scanner].
func (u *URI) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(u.UnmarshalText([]byte(s)))
}

// Value implements [driver.Valuer].
func (i *IRI) Value() (driver.Value, error) { return i.text, nil }

// Scan implements [database/sql.Scanner].
func (i *IRI) Scan(src any) error {
	s, err := scanText(src)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(i.UnmarshalText([]byte(s)))
}

func scanText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into an address", src) //errtrace:skip
	}
}
