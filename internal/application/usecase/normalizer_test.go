package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/entity"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	n := NewNormalizer(&fakeDirectory{}, false)

	item, err := n.Normalize(context.Background(), entity.RawTransactionRow{
		DocumentNumber: "INV-001",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultCustomerName, item.CustomerName)
	assert.Equal(t, entity.DefaultCustomerEmail, item.CustomerEmail)
	assert.Equal(t, entity.DefaultAmount, item.Amount)
	assert.Equal(t, "INV-001", item.DocumentNumber)
	assert.Equal(t, entity.GroupKeyUnassigned, item.GroupKey)
}

func TestNormalizeKeepsProvidedFields(t *testing.T) {
	n := NewNormalizer(&fakeDirectory{}, false)

	item, err := n.Normalize(context.Background(), entity.RawTransactionRow{
		DocumentNumber: "INV-002",
		Customer:       &entity.EntityRef{ID: "77", Name: "Acme, Inc."},
		CustomerEmail:  "billing@acme.example",
		Amount:         "1499.90",
		Representative: &entity.EntityRef{ID: "12", Name: "Jo Field"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme, Inc.", item.CustomerName)
	assert.Equal(t, "billing@acme.example", item.CustomerEmail)
	assert.Equal(t, "1499.90", item.Amount)
	assert.Equal(t, "12", item.GroupKey)
}

func TestNormalizeRejectsEmptyRow(t *testing.T) {
	n := NewNormalizer(&fakeDirectory{}, false)

	_, err := n.Normalize(context.Background(), entity.RawTransactionRow{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedRow)
}

func TestNormalizeRejectsNonNumericAmount(t *testing.T) {
	n := NewNormalizer(&fakeDirectory{}, false)

	_, err := n.Normalize(context.Background(), entity.RawTransactionRow{
		DocumentNumber: "INV-003",
		Amount:         "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedRow)
}

func TestResolveGroupKeyFallbackPolicy(t *testing.T) {
	dir := &fakeDirectory{customerReps: map[string]string{"77": "12"}}
	row := entity.RawTransactionRow{
		DocumentNumber: "INV-004",
		Customer:       &entity.EntityRef{ID: "77", Name: "Acme"},
		Amount:         "10.00",
	}

	t.Run("policy off groups as unassigned", func(t *testing.T) {
		n := NewNormalizer(dir, false)
		item, err := n.Normalize(context.Background(), row)
		require.NoError(t, err)
		assert.Equal(t, entity.GroupKeyUnassigned, item.GroupKey)
	})

	t.Run("policy on uses customer default rep", func(t *testing.T) {
		n := NewNormalizer(dir, true)
		item, err := n.Normalize(context.Background(), row)
		require.NoError(t, err)
		assert.Equal(t, "12", item.GroupKey)
	})

	t.Run("policy on with unknown customer falls back to unassigned", func(t *testing.T) {
		n := NewNormalizer(&fakeDirectory{}, true)
		item, err := n.Normalize(context.Background(), row)
		require.NoError(t, err)
		assert.Equal(t, entity.GroupKeyUnassigned, item.GroupKey)
	})

	t.Run("explicit rep wins over policy", func(t *testing.T) {
		n := NewNormalizer(dir, true)
		withRep := row
		withRep.Representative = &entity.EntityRef{ID: "34"}
		item, err := n.Normalize(context.Background(), withRep)
		require.NoError(t, err)
		assert.Equal(t, "34", item.GroupKey)
	})
}
