package table_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("should start empty with zero guests", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")

		require.NoError(t, err)
		assert.True(t, tbl.IsEmpty())
		assert.Equal(t, 0, tbl.NumberOfGuests())
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := table.NewTable(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTable_SitAndClear(t *testing.T) {
	t.Run("sit marks the table occupied", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
		require.NoError(t, err)

		tbl.Sit()

		assert.False(t, tbl.IsEmpty())
	})

	t.Run("clear releases the table and zeroes the guest count", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
		require.NoError(t, err)
		tbl.Sit()
		require.NoError(t, tbl.ChangeNumberOfGuests(4))

		tbl.Clear()

		assert.True(t, tbl.IsEmpty())
		assert.Equal(t, 0, tbl.NumberOfGuests())
	})
}

func TestTable_ChangeNumberOfGuests(t *testing.T) {
	t.Run("should set the guest count while occupied", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
		require.NoError(t, err)
		tbl.Sit()

		require.NoError(t, tbl.ChangeNumberOfGuests(3))
		assert.Equal(t, 3, tbl.NumberOfGuests())
	})

	t.Run("should reject negative guest counts", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
		require.NoError(t, err)
		tbl.Sit()

		require.ErrorIs(t, tbl.ChangeNumberOfGuests(-1), errs.ErrValueIsInvalid)
	})

	t.Run("should reject guest changes on an empty table", func(t *testing.T) {
		tbl, err := table.NewTable(kernel.NewUUID(), "Table 1")
		require.NoError(t, err)

		require.ErrorIs(t, tbl.ChangeNumberOfGuests(2), table.ErrTableIsEmpty)
	})
}

func TestRestoreTable(t *testing.T) {
	t.Run("should restore occupancy as persisted", func(t *testing.T) {
		tbl, err := table.RestoreTable(kernel.NewUUID(), "Table 1", 4, false)

		require.NoError(t, err)
		assert.False(t, tbl.IsEmpty())
		assert.Equal(t, 4, tbl.NumberOfGuests())
	})

	t.Run("should reject a negative persisted guest count", func(t *testing.T) {
		_, err := table.RestoreTable(kernel.NewUUID(), "Table 1", -1, false)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTable_Validate(t *testing.T) {
	t.Run("should reject a zero-value table", func(t *testing.T) {
		var tbl table.Table

		require.ErrorIs(t, tbl.Validate(), table.ErrTableIsNotConstructed)
	})
}
