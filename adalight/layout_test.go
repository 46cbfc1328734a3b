package adalight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutCount(t *testing.T) {
	for _, tc := range []struct {
		name   string
		layout Layout
		count  int
	}{
		{"grid 5x8", GridLayout(5, 8), 40},
		{"grid 1x1", GridLayout(1, 1), 1},
		{"edges tv", EdgesLayout(20, 20, 10, 10), 60},
		{"edges top only", EdgesLayout(32, 0, 0, 0), 32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.count, tc.layout.Count())
			assert.NoError(t, tc.layout.Validate())
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		layout Layout
	}{
		{"grid zero rows", GridLayout(0, 8)},
		{"grid negative cols", GridLayout(5, -1)},
		{"edges all zero", EdgesLayout(0, 0, 0, 0)},
		{"edges negative", EdgesLayout(-1, 10, 10, 10)},
		{"too many leds", GridLayout(300, 300)},
		{"unknown format", Layout{Format: Format(9)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.layout.Validate())
		})
	}
}
