package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"", 0, true},
		{"   ", 0, true},
		{"12", 12, true},
		{" 12 ", 12, true},
		{"-3", -3, true},
		{"30.0", 30, true},
		{"30.5", 30, true},
		{"-2.9", -2, true},
		{"1e2", 100, true},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e300", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseInt(tc.in)
		assert.Equal(t, tc.want, got, "value %q", tc.in)
		assert.Equal(t, tc.ok, ok, "ok %q", tc.in)
	}
}
