package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	cases := []struct {
		name   string
		a, b   int
		lo, hi int
	}{
		{"already ordered", 1, 2, 1, 2},
		{"swapped", 9, 4, 4, 9},
		{"equal ids", 7, 7, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := normalizePair(tc.a, tc.b)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestNormalizePairSymmetric(t *testing.T) {
	lo1, hi1 := normalizePair(3, 11)
	lo2, hi2 := normalizePair(11, 3)
	assert.Equal(t, lo1, lo2)
	assert.Equal(t, hi1, hi2)
}
