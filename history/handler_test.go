package history

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tana/model"
	"tana/session"
	"tana/state"
	"tana/store"
)

func TestFinalizeSessionHandler(t *testing.T) {
	gw := state.New(store.NewMemory())
	m := session.NewManager(gw)
	a := NewArchive(gw)

	m.SetStaffName("山田")
	m.AddProduct(model.Product{ID: 1, Name: "商品A", JanSuffix: "1234"})
	require.True(t, m.UpdateLots(1, []model.LotRow{{ID: 1, LotCount: 2, QuantityPerLot: 3}}))

	req := httptest.NewRequest(http.MethodPost, "/api/session/finalize", nil)
	w := httptest.NewRecorder()
	FinalizeSessionHandler(m, a)(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	records := a.List()
	require.Len(t, records, 1)
	require.Equal(t, "山田", records[0].StaffName)
	require.Equal(t, 6, records[0].TotalQuantity)

	// 確定後は入力中スロットが空に戻る
	s := m.Current()
	require.Empty(t, s.Items)
	require.Equal(t, "", s.StaffName)
}

func TestFinalizeSessionHandlerRequiresStaffName(t *testing.T) {
	gw := state.New(store.NewMemory())
	m := session.NewManager(gw)
	a := NewArchive(gw)
	m.AddProduct(model.Product{ID: 1, Name: "商品A", JanSuffix: "1234"})

	req := httptest.NewRequest(http.MethodPost, "/api/session/finalize", nil)
	w := httptest.NewRecorder()
	FinalizeSessionHandler(m, a)(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, a.List())
	require.Len(t, m.Current().Items, 1)
}

func TestFinalizeSessionHandlerRejectsEmptySession(t *testing.T) {
	gw := state.New(store.NewMemory())
	m := session.NewManager(gw)
	a := NewArchive(gw)
	m.SetStaffName("山田")

	req := httptest.NewRequest(http.MethodPost, "/api/session/finalize", nil)
	w := httptest.NewRecorder()
	FinalizeSessionHandler(m, a)(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, a.List())
}
