package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustmentTypeApply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		typ        AdjustmentType
		current    int
		quantity   int
		wantStock  int
		wantChange int
	}{
		{"in adds", AdjustIn, 10, 5, 15, 5},
		{"out subtracts", AdjustOut, 10, 4, 6, -4},
		{"out clamps at zero but logs full change", AdjustOut, 3, 10, 0, -10},
		{"set replaces and logs delta", AdjustSet, 10, 25, 25, 15},
		{"set down logs negative delta", AdjustSet, 10, 4, 4, -6},
		{"sale subtracts", AdjustSale, 5, 3, 2, -3},
		{"unknown type is a no-op", AdjustmentType("bogus"), 10, 5, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotStock, gotChange := tc.typ.Apply(tc.current, tc.quantity)
			assert.Equal(t, tc.wantStock, gotStock)
			assert.Equal(t, tc.wantChange, gotChange)
		})
	}
}

func TestIsMerchantAdjustment(t *testing.T) {
	t.Parallel()

	assert.True(t, AdjustIn.IsMerchantAdjustment())
	assert.True(t, AdjustOut.IsMerchantAdjustment())
	assert.True(t, AdjustSet.IsMerchantAdjustment())
	assert.False(t, AdjustSale.IsMerchantAdjustment())
}
