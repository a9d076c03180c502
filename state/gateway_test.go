package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tana/store"
)

func TestLoadReturnsDefaultWhenAbsent(t *testing.T) {
	gw := New(store.NewMemory())

	got := Load(gw, "inventory-in-progress", []int{1, 2})
	require.Equal(t, []int{1, 2}, got)
}

func TestLoadReturnsDefaultOnMalformedJSON(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("inventory-in-progress", "not json"))
	gw := New(kv)

	got := Load(gw, "inventory-in-progress", []string{})
	require.Equal(t, []string{}, got)

	// 壊れた値を黙って上書きしないこと
	v, ok, err := kv.Get("inventory-in-progress")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "not json", v)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	gw := New(store.NewMemory())

	type row struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := []row{{ID: 1, Name: "商品A", Count: 3}, {ID: 2, Name: "商品B", Count: 5}}
	Save(gw, "inventory-in-progress", in)

	got := Load(gw, "inventory-in-progress", []row(nil))
	require.Equal(t, in, got)
}

func TestClearRemovesSlot(t *testing.T) {
	kv := store.NewMemory()
	gw := New(kv)
	Save(gw, "staff-name-slot", "x")

	gw.Clear("staff-name-slot")
	_, ok, err := kv.Get("staff-name-slot")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRawStringPlainValue(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(KeyStaffName, "山田"))
	gw := New(kv)

	require.Equal(t, "山田", gw.RawString(KeyStaffName))
	require.Equal(t, "", gw.RawString("missing-key"))
}
