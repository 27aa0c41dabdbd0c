package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pen", "pen"},
		{"Blue Pen", "blue_pen"},
		{"  Blue  Pen!  ", "blue_pen"},
		{"USB-C Cable (2m)", "usb_c_cable_2m"},
		{"___", ""},
		{"Café", "caf"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
