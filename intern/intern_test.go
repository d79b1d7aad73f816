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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package intern

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestIntern tests deduplication: equal strings from distinct allocations
// intern to one entry.
func TestIntern(t *testing.T) {
	table := New()

	// Build equal strings at runtime so the compiler cannot share them.
	first := strings.Repeat("example.com", 1)
	second := "example" + ".com"

	c1 := table.Intern(first)
	c2 := table.Intern(second)
	if c1 != c2 {
		t.Errorf("Intern returned different text for equal inputs: %q, %q", c1, c2)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
	if !table.Has("example.com") {
		t.Error("Has(\"example.com\") = false, want true")
	}
	if table.Has("other") {
		t.Error("Has(\"other\") = true, want false")
	}
}

// TestIntern_DetachesSubstrings checks that the stored canonical copy is
// not the caller's slice of a larger buffer.
func TestIntern_DetachesSubstrings(t *testing.T) {
	table := New()
	buffer := strings.Repeat("x", 1<<16) + "needle"

	c := table.Intern(buffer[1<<16:])
	if c != "needle" {
		t.Fatalf("Intern = %q, want %q", c, "needle")
	}
	// The canonical instance must survive the buffer; an equality check
	// after re-interning from an unrelated allocation proves it is served
	// from the table.
	if again := table.Intern("nee" + "dle"); again != c {
		t.Errorf("re-Intern = %q, want the canonical %q", again, c)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

// TestNew_Shards tests the shard-count option.
func TestNew_Shards(t *testing.T) {
	table := New(Shards(4))
	if got := len(table.shards); got != 4 {
		t.Errorf("New(Shards(4)) built %d shards, want 4", got)
	}

	table = New()
	if got := len(table.shards); got != int(defShards) {
		t.Errorf("New() built %d shards, want %d", got, defShards)
	}

	for i := 0; i < 100; i++ {
		table.Intern(fmt.Sprintf("key-%d", i))
	}
	if table.Len() != 100 {
		t.Errorf("Len() = %d, want 100", table.Len())
	}
}

// TestIntern_Concurrent hammers one table from many goroutines interning
// the same key set; the table must end up with exactly that set.
func TestIntern_Concurrent(t *testing.T) {
	table := New(Shards(8))

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				s := fmt.Sprintf("key-%d", i)
				if got := table.Intern(s); got != s {
					return fmt.Errorf("Intern(%q) = %q", s, got)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if table.Len() != 100 {
		t.Errorf("Len() = %d, want 100", table.Len())
	}
}
