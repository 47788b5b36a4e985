package sale

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *SaleContract {
	t.Helper()
	contract, err := NewSaleContract("SC-2024-0001", uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(30000))
	require.NoError(t, err)
	return contract
}

func TestNewSaleContract(t *testing.T) {
	t.Run("creates draft", func(t *testing.T) {
		contract := newDraft(t)
		assert.Equal(t, ContractStatusDraft, contract.Status)
		assert.True(t, contract.IsDraft())
		assert.Nil(t, contract.SignedAt)
	})

	t.Run("fails without number", func(t *testing.T) {
		_, err := NewSaleContract("", uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(30000))
		require.Error(t, err)
	})

	t.Run("fails without buyer", func(t *testing.T) {
		_, err := NewSaleContract("SC-1", uuid.New(), uuid.Nil, uuid.New(), decimal.NewFromInt(30000))
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewSaleContract("SC-1", uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestContractLifecycle(t *testing.T) {
	t.Run("signs a draft", func(t *testing.T) {
		contract := newDraft(t)
		require.NoError(t, contract.Sign())

		assert.True(t, contract.IsSigned())
		require.NotNil(t, contract.SignedAt)
	})

	t.Run("cannot sign twice", func(t *testing.T) {
		contract := newDraft(t)
		require.NoError(t, contract.Sign())
		require.Error(t, contract.Sign())
	})

	t.Run("cannot sign after cancel", func(t *testing.T) {
		contract := newDraft(t)
		require.NoError(t, contract.Cancel("buyer withdrew"))
		require.Error(t, contract.Sign())
	})

	t.Run("cancel records reason and time", func(t *testing.T) {
		contract := newDraft(t)
		require.NoError(t, contract.Cancel("buyer withdrew"))

		assert.Equal(t, ContractStatusCanceled, contract.Status)
		assert.Equal(t, "buyer withdrew", contract.CancelReason)
		require.NotNil(t, contract.CanceledAt)
	})

	t.Run("reprices only drafts", func(t *testing.T) {
		contract := newDraft(t)
		require.NoError(t, contract.UpdatePrice(decimal.NewFromInt(28000)))
		assert.True(t, contract.AgreedPrice.Equal(decimal.NewFromInt(28000)))

		require.NoError(t, contract.Sign())
		require.Error(t, contract.UpdatePrice(decimal.NewFromInt(27000)))
	})
}
