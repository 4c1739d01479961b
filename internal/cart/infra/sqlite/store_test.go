package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manuelsilva1/Library/internal/cart/domain"
)

func openTestDB(t *testing.T) *Store {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, "session-1")
}

func TestStoreRoundTrip(t *testing.T) {
	slot := openTestDB(t)

	items := []domain.LineItem{
		{BookID: "b1", Title: "Rayuela", UnitPrice: decimal.RequireFromString("15.00"), Quantity: 2, StockLimit: 4},
		{BookID: "b2", Title: "Ficciones", UnitPrice: decimal.RequireFromString("9.90"), Quantity: 1},
	}

	require.NoError(t, slot.Save(items))

	got, err := slot.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].BookID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[0].UnitPrice.Equal(items[0].UnitPrice))
}

func TestStoreOverwriteAndDiscard(t *testing.T) {
	slot := openTestDB(t)

	require.NoError(t, slot.Save([]domain.LineItem{{BookID: "b1", Quantity: 1}}))
	require.NoError(t, slot.Save([]domain.LineItem{{BookID: "b2", Quantity: 3}}))

	got, err := slot.Load()
	require.NoError(t, err)
	require.Len(t, got, 1, "save replaces the whole slot")
	assert.Equal(t, "b2", got[0].BookID)

	require.NoError(t, slot.Discard())

	got, err = slot.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSlotsAreIndependent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	web := NewStore(db, "web")
	pos := NewStore(db, "pos")

	require.NoError(t, web.Save([]domain.LineItem{{BookID: "w", Quantity: 1}}))
	require.NoError(t, pos.Save([]domain.LineItem{{BookID: "p", Quantity: 2}}))
	require.NoError(t, web.Discard())

	got, err := pos.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p", got[0].BookID)
}
