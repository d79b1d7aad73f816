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
)

func TestParseProto(t *testing.T) {
	testCases := []struct {
		input string
		want  Proto
	}{
		{input: "tcp", want: TCP},
		{input: "TCP", want: TCP},
		{input: "udp", want: UDP},
		{input: "Sctp", want: SCTP},
		{input: "dccp", want: DCCP},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p, err := ParseProto(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}

	_, err := ParseProto("icmp")
	require.ErrorIs(t, err, ErrBadProto)
}

func TestProtoString(t *testing.T) {
	assert.Equal(t, "tcp", TCP.String())
	assert.Equal(t, "udp", UDP.String())
	assert.Equal(t, "proto(9)", Proto(9).String())
}

func TestProtoTextRoundTrip(t *testing.T) {
	text, err := SCTP.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sctp", string(text))

	var p Proto
	require.NoError(t, p.UnmarshalText([]byte("UDP")))
	assert.Equal(t, UDP, p)

	_, err = Proto(9).MarshalText()
	require.ErrorIs(t, err, ErrBadProto)
}

func TestParsePort(t *testing.T) {
	p, err := ParsePort("8080")
	require.NoError(t, err)
	assert.Equal(t, Port(8080), p)
	assert.True(t, p.Valid())
	assert.Equal(t, "8080", p.String())

	for _, bad := range []string{"", "0", "65536", "-1", "http", "8_0"} {
		_, err := ParsePort(bad)
		require.ErrorIs(t, err, ErrBadPort, "input %q", bad)
	}
	assert.False(t, Port(0).Valid())
}

func TestParseRange(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Range
	}{
		{name: "Single port", input: "80", want: Range{Lo: 80, Hi: 80}},
		{name: "Span", input: "8000-9000", want: Range{Lo: 8000, Hi: 9000}},
		{name: "Degenerate span", input: "443-443", want: Range{Lo: 443, Hi: 443}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseRange(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}

	for _, bad := range []string{"", "-", "80-", "-90", "9000-8000", "a-b", "1-2-3"} {
		_, err := ParseRange(bad)
		require.ErrorIs(t, err, ErrBadRange, "input %q", bad)
	}
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(90, 80)
	require.NoError(t, err)
	assert.Equal(t, Range{Lo: 80, Hi: 90}, r, "bounds are reordered")

	_, err = NewRange(0, 80)
	require.ErrorIs(t, err, ErrBadRange)
}

func TestRangePredicates(t *testing.T) {
	r := MustParseRange("100-200")

	assert.Equal(t, 101, r.Len())
	assert.True(t, r.Contains(100))
	assert.True(t, r.Contains(200))
	assert.False(t, r.Contains(99))
	assert.False(t, r.Contains(201))

	assert.True(t, r.Overlaps(MustParseRange("200-300")))
	assert.True(t, r.Overlaps(MustParseRange("1-65535")))
	assert.False(t, r.Overlaps(MustParseRange("201-300")))

	assert.True(t, r.Adjacent(MustParseRange("201-300")))
	assert.True(t, MustParseRange("50-99").Adjacent(r))
	assert.False(t, r.Adjacent(MustParseRange("300-400")))
	assert.False(t, r.Adjacent(MustParseRange("150-250")), "overlap is not adjacency")
}

func TestRangeUnion(t *testing.T) {
	u, ok := MustParseRange("100-200").Union(MustParseRange("150-300"))
	require.True(t, ok)
	assert.Equal(t, MustParseRange("100-300"), u)

	u, ok = MustParseRange("100-200").Union(MustParseRange("201-300"))
	require.True(t, ok)
	assert.Equal(t, MustParseRange("100-300"), u)

	_, ok = MustParseRange("100-200").Union(MustParseRange("300-400"))
	assert.False(t, ok)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "80", Range{Lo: 80, Hi: 80}.String())
	assert.Equal(t, "8000-9000", Range{Lo: 8000, Hi: 9000}.String())
}

func TestCoalesce(t *testing.T) {
	testCases := []struct {
		name  string
		in    []string
		want  []string
	}{
		{
			name: "Disjoint sorted",
			in:   []string{"80", "443", "8000-8100"},
			want: []string{"80", "443", "8000-8100"},
		},
		{
			name: "Unsorted overlapping",
			in:   []string{"8000-8100", "80", "8050-8200", "79-81"},
			want: []string{"79-81", "8000-8200"},
		},
		{
			name: "Adjacent merge",
			in:   []string{"100-199", "200-299", "300"},
			want: []string{"100-300"},
		},
		{
			name: "Contained",
			in:   []string{"1-1000", "500-600"},
			want: []string{"1-1000"},
		},
		{
			name: "Duplicates",
			in:   []string{"80", "80", "80"},
			want: []string{"80"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := make([]Range, len(tc.in))
			for i, s := range tc.in {
				in[i] = MustParseRange(s)
			}
			got := Coalesce(in)
			gotStr := make([]string, len(got))
			for i, r := range got {
				gotStr[i] = r.String()
			}
			assert.Equal(t, tc.want, gotStr)
		})
	}

	assert.Nil(t, Coalesce(nil))
	assert.Nil(t, Coalesce([]Range{{}}), "invalid ranges are dropped")
}

// TestCoalesceDoesNotMutate checks that the caller's slice keeps its
// original order.
func TestCoalesceDoesNotMutate(t *testing.T) {
	in := []Range{MustParseRange("300-400"), MustParseRange("100-200")}
	_ = Coalesce(in)
	assert.Equal(t, MustParseRange("300-400"), in[0])
}
