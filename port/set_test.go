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
package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uriq/uriq"
)

func TestSet(t *testing.T) {
	s := NewSet()
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Len())

	s.Add(443)
	s.Add(80)
	s.Add(80) // idempotent
	s.AddRange(MustParseRange("8000-8100"))
	s.Add(0) // ignored
	s.AddRange(Range{})

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 103, s.Len())
	assert.True(t, s.Contains(80))
	assert.True(t, s.Contains(8000))
	assert.True(t, s.Contains(8100))
	assert.False(t, s.Contains(8101))
	assert.False(t, s.Contains(0))
}

func TestSetRanges(t *testing.T) {
	s := NewSet(MustParseRange("100-102"), MustParseRange("200"))
	s.Add(103)
	s.Add(99)

	assert.Equal(t, []Range{
		{Lo: 99, Hi: 103},
		{Lo: 200, Hi: 200},
	}, s.Ranges())
	assert.Equal(t, "99-103,200", s.String())

	assert.Nil(t, NewSet().Ranges())
	assert.Empty(t, NewSet().String())
}

func TestSetAll(t *testing.T) {
	s := NewSet(MustParseRange("10-12"))
	s.Add(5)

	var got []Port
	for p := range s.All() {
		got = append(got, p)
	}
	assert.Equal(t, []Port{5, 10, 11, 12}, got, "ascending order")

	// Early break must not panic or spin.
	for range s.All() {
		break
	}
}

// TestSetEdges pins the bitmap wrapping at the top of the port space,
// where the exclusive-upper-bound translation is easiest to get wrong.
func TestSetEdges(t *testing.T) {
	s := NewSet(MustParseRange("65530-65535"))
	assert.Equal(t, 6, s.Len())
	assert.True(t, s.Contains(65535))
	assert.Equal(t, "65530-65535", s.String())
}

func TestQuery(t *testing.T) {
	s := NewSet(MustParseRange("8000-8100"))
	s.Add(80)

	src := Query("p", s)
	require.Equal(t, []string{"p"}, src.Names())
	assert.Equal(t, []string{"80", "8000-8100"}, src.Values("p"))
	assert.Nil(t, src.Values("other"))

	// A snapshot: growing the set later does not show through.
	s.Add(443)
	assert.Equal(t, []string{"80", "8000-8100"}, src.Values("p"))

	empty := Query("p", NewSet())
	assert.Nil(t, empty.Names())
	assert.Nil(t, empty.Values("p"))
}

// TestQueryAddParams exercises the adapter end to end through an address
// mutation.
func TestQueryAddParams(t *testing.T) {
	s := NewSet(MustParseRange("8000-8100"))
	s.Add(80)

	a, err := uriq.Parse("/svc").AddParams(Query("p", s))
	require.NoError(t, err)
	assert.Equal(t, "/svc?p=80&p=8000-8100", a.String())

	// An empty source splices nothing and returns the same instance.
	same, err := a.AddParams(Query("p", NewSet()))
	require.NoError(t, err)
	assert.Same(t, a, same)
}
