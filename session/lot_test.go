package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tana/model"
)

func TestClampCount(t *testing.T) {
	cases := []struct {
		in       string
		expected int
	}{
		{"3", 3},
		{" 7 ", 7},
		{"1", 1},
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, ClampCount(tc.in), "ClampCount(%q)", tc.in)
	}
}

func TestUpdateLotField(t *testing.T) {
	row := model.LotRow{ID: 1, LotCount: 2, QuantityPerLot: 3}

	got := UpdateLotField(row, FieldLotCount, "-5")
	require.Equal(t, 1, got.LotCount)
	require.Equal(t, 3, got.QuantityPerLot)

	got = UpdateLotField(row, FieldQuantityPerLot, "abc")
	require.Equal(t, 2, got.LotCount)
	require.Equal(t, 1, got.QuantityPerLot)

	got = UpdateLotField(row, "unknown", "9")
	require.Equal(t, row, got)
}

func TestNewLotRowDefaults(t *testing.T) {
	ids := NewLotIDSource()
	row := NewLotRow(ids)
	require.Equal(t, 1, row.LotCount)
	require.Equal(t, 1, row.QuantityPerLot)
	require.Equal(t, 1, row.Subtotal())
	require.NotZero(t, row.ID)
}

func TestLotIDSourceUniqueUnderRapidCreation(t *testing.T) {
	ids := NewLotIDSource()
	seen := make(map[int64]bool)
	last := int64(0)
	for i := 0; i < 1000; i++ {
		id := ids.Next()
		require.False(t, seen[id], "duplicate id %d", id)
		require.Greater(t, id, last)
		seen[id] = true
		last = id
	}
}

func TestClampLotsAssignsMissingIDs(t *testing.T) {
	ids := NewLotIDSource()
	lots := ClampLots([]model.LotRow{
		{ID: 0, LotCount: 0, QuantityPerLot: -2},
		{ID: 42, LotCount: 3, QuantityPerLot: 4},
	}, ids)

	require.NotZero(t, lots[0].ID)
	require.Equal(t, 1, lots[0].LotCount)
	require.Equal(t, 1, lots[0].QuantityPerLot)
	require.Equal(t, int64(42), lots[1].ID)
	require.Equal(t, 3, lots[1].LotCount)
	require.Equal(t, 4, lots[1].QuantityPerLot)
}

func TestLotsTotal(t *testing.T) {
	lots := []model.LotRow{
		{LotCount: 2, QuantityPerLot: 3},
		{LotCount: 1, QuantityPerLot: 5},
	}
	require.Equal(t, 11, LotsTotal(lots))
	require.Equal(t, 0, LotsTotal(nil))
}
