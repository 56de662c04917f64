package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, amount := range []int64{0, 1, 10000, 80000} {
			m, err := kernel.NewMoneyFromInt(amount)
			require.NoError(t, err)
			assert.True(t, m.Amount().Equal(decimal.NewFromInt(amount)))
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromInt(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should preserve fractional amounts exactly", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("19.99"))

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromInt(10000)
		b, _ := kernel.NewMoneyFromInt(20000)

		assert.Equal(t, "30000", a.Add(b).String())
	})

	t.Run("should multiply by a quantity", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromInt(10000)

		assert.Equal(t, "20000", m.MulQuantity(2).String())
	})

	t.Run("should multiply by a negative quantity without clamping", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromInt(10000)

		assert.Equal(t, "-10000", m.MulQuantity(-1).String())
	})

	t.Run("should start summation from zero", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for _, amount := range []int64{10000, 20000} {
			m, _ := kernel.NewMoneyFromInt(amount)
			total = total.Add(m)
		}

		assert.Equal(t, "30000", total.String())
	})
}

func TestMoney_Comparison(t *testing.T) {
	t.Run("should compare amounts", func(t *testing.T) {
		low, _ := kernel.NewMoneyFromInt(80000)
		high, _ := kernel.NewMoneyFromInt(80001)

		assert.True(t, high.GreaterThan(low))
		assert.False(t, low.GreaterThan(high))
		assert.False(t, low.GreaterThan(low))
	})

	t.Run("should treat equal amounts of different scale as equal", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.RequireFromString("10"))
		b, _ := kernel.NewMoney(decimal.RequireFromString("10.00"))

		assert.True(t, a.IsEqual(b))
	})
}
