package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		cents  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{12.49, 1249},
		{100, 10000},
		{15, 1500},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.cents, toCents(tc.amount), "amount %v", tc.amount)
	}
}
