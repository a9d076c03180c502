package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"tana/model"
)

func TestRehydrateLegacyLotShape(t *testing.T) {
	blob := []byte(`[{"productId":1,"productName":"A","janSuffix":"1234",` +
		`"lots":[{"id":1,"lot":"2","quantity":5}],"subtotal":5}]`)

	items := RehydrateItems(blob, NewLotIDSource())
	require.Len(t, items, 1)
	require.Len(t, items[0].Lots, 1)
	require.Equal(t, int64(1), items[0].Lots[0].ID)
	require.Equal(t, 1, items[0].Lots[0].LotCount)
	require.Equal(t, 5, items[0].Lots[0].QuantityPerLot)
	require.Equal(t, 5, items[0].Subtotal)
}

func TestRehydrateCurrentShapeRoundTrip(t *testing.T) {
	ids := NewLotIDSource()
	items, _ := AddItem(nil, model.Product{ID: 3, Name: "商品C", JanSuffix: "9012"}, ids)
	items, _ = SetLots(items, 3, []model.LotRow{
		{ID: 10, LotCount: 4, QuantityPerLot: 6},
	}, ids)

	blob, err := json.Marshal(items)
	require.NoError(t, err)

	got := RehydrateItems(blob, ids)
	require.Equal(t, items, got)
}

func TestRehydrateCorruptBlobGivesEmptySession(t *testing.T) {
	for _, blob := range []string{`not json`, `{"unexpected":"object"}`, `123`} {
		items := RehydrateItems([]byte(blob), NewLotIDSource())
		require.Empty(t, items, "blob %q", blob)
	}
	require.Empty(t, RehydrateItems(nil, NewLotIDSource()))
}

func TestRehydrateMissingLotsSubstitutesDefaultRow(t *testing.T) {
	blob := []byte(`[{"productId":7,"productName":"D","janSuffix":"3456"}]`)

	items := RehydrateItems(blob, NewLotIDSource())
	require.Len(t, items, 1)
	require.Len(t, items[0].Lots, 1)
	require.Equal(t, 1, items[0].Lots[0].LotCount)
	require.Equal(t, 1, items[0].Lots[0].QuantityPerLot)
	require.Equal(t, 1, items[0].Subtotal)
}

func TestRehydrateMalformedLotsSubstitutesDefaultRow(t *testing.T) {
	blob := []byte(`[{"productId":7,"lots":"garbage"}]`)

	items := RehydrateItems(blob, NewLotIDSource())
	require.Len(t, items, 1)
	require.Len(t, items[0].Lots, 1)
	require.Equal(t, 1, items[0].Subtotal)
}

func TestRehydrateMissingScalarFieldsDefault(t *testing.T) {
	blob := []byte(`[{"lots":[{"id":2,"lotCount":2,"quantityPerLot":3}]}]`)

	items := RehydrateItems(blob, NewLotIDSource())
	require.Len(t, items, 1)
	require.Equal(t, 0, items[0].ProductID)
	require.Equal(t, "", items[0].ProductName)
	require.Equal(t, "", items[0].JanSuffix)
	require.Equal(t, 6, items[0].Subtotal)
}

func TestRehydrateClampsOutOfRangeCounts(t *testing.T) {
	blob := []byte(`[{"productId":1,"lots":[{"id":1,"lotCount":0,"quantityPerLot":-3}]}]`)

	items := RehydrateItems(blob, NewLotIDSource())
	require.Equal(t, 1, items[0].Lots[0].LotCount)
	require.Equal(t, 1, items[0].Lots[0].QuantityPerLot)
}
