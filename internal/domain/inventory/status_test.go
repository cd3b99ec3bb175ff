package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocktrack-api/internal/domain/inventory"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Escenarios de derivación de estado según stock actual vs mínimo.
func TestStatusFor_Escenarios(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		minStock int64
		want     string
	}{
		{"stock cero es out-of-stock", 0, 10, inventory.StatusOutOfStock},
		{"por debajo del mínimo es low-stock", 3, 10, inventory.StatusLowStock},
		{"por encima del mínimo es in-stock", 150, 50, inventory.StatusInStock},
		{"igual al mínimo es in-stock", 10, 10, inventory.StatusInStock},
		{"mínimo cero con stock es in-stock", 5, 0, inventory.StatusInStock},
		{"stock negativo se trata como out-of-stock", -2, 10, inventory.StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.StatusFor(d(tc.current), d(tc.minStock)))
		})
	}
}

func TestBelowMin(t *testing.T) {
	assert.True(t, inventory.BelowMin(d(0), d(10)), "out-of-stock requiere atención")
	assert.True(t, inventory.BelowMin(d(3), d(10)), "low-stock requiere atención")
	assert.False(t, inventory.BelowMin(d(150), d(50)), "in-stock no requiere atención")
}

func TestSufficient(t *testing.T) {
	assert.True(t, inventory.Sufficient(d(8), d(8)), "cantidad igual al disponible es suficiente")
	assert.False(t, inventory.Sufficient(d(8), d(9001)), "cantidad mayor al disponible es insuficiente")
}
