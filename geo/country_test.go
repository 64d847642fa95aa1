package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISO2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "trim and uppercase", in: "  de  ", want: "DE", ok: true},
		{name: "already normalized", in: "GB", want: "GB", ok: true},
		{name: "mixed case", in: "lV", want: "LV", ok: true},
		{name: "trim newline and tab", in: "\nmr\t", want: "MR", ok: true},
		{name: "contains digit", in: "D4", ok: false},
		{name: "too short", in: "D", ok: false},
		{name: "too long", in: "DEU", ok: false},
		{name: "internal space", in: "D E", ok: false},
		{name: "unicode sharp s", in: "ß", ok: false},
		{name: "non ascii letters", in: "éé", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeISO2(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidISO2(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidISO2("zz"))
	assert.False(t, IsValidISO2("z1"))
}
