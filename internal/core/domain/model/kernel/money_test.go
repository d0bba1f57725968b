package kernel_test

import (
	"testing"

	"catering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	t.Run("should add and subtract exactly", func(t *testing.T) {
		subtotal := kernel.MoneyFromFloat(675)
		discount := kernel.MoneyFromFloat(67.50)
		fee := kernel.MoneyFromFloat(5)

		total := subtotal.Sub(discount).Add(fee)

		assert.Equal(t, "612.50", total.String())
	})

	t.Run("should multiply by headcount without drift", func(t *testing.T) {
		perPerson := kernel.MoneyFromFloat(45)

		subtotal := perPerson.MulInt(15)

		assert.True(t, subtotal.IsEqual(kernel.MoneyFromFloat(675)))
	})

	t.Run("should multiply by decimal rate", func(t *testing.T) {
		subtotal := kernel.MoneyFromFloat(675)

		discount := subtotal.Mul(decimal.NewFromFloat(0.10))

		assert.Equal(t, "67.50", discount.String())
	})
}

func TestMoney_RoundHalfUp(t *testing.T) {
	t.Run("should round half up at two decimals", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")
		require.NoError(t, err)

		assert.Equal(t, "10.01", m.RoundHalfUp().String())
	})

	t.Run("should keep exact two-decimal amounts", func(t *testing.T) {
		m := kernel.MoneyFromFloat(612.50)

		assert.Equal(t, "612.50", m.RoundHalfUp().String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("600")

		require.NoError(t, err)
		assert.Equal(t, "600.00", m.String())
	})

	t.Run("should fail on non-numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("six hundred")

		require.Error(t, err)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		require.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
	})

	t.Run("negative amounts are invalid", func(t *testing.T) {
		m := kernel.MoneyFromFloat(-1)

		require.Error(t, m.Validate())
		assert.True(t, m.IsNegative())
	})
}
