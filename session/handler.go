package session

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tana/model"
)

// ProductFinder は商品マスタの参照口です。
type ProductFinder interface {
	Find(id int) (model.Product, bool)
}

type sessionView struct {
	StaffName  string                `json:"staffName"`
	Items      []model.InventoryItem `json:"items"`
	GrandTotal int                   `json:"grandTotal"`
}

func writeSession(w http.ResponseWriter, s Session) {
	w.Header().Set("Content-Type", "application/json")
	view := sessionView{StaffName: s.StaffName, Items: s.Items, GrandTotal: GrandTotal(s.Items)}
	if view.Items == nil {
		view.Items = []model.InventoryItem{}
	}
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Error encoding session response: %v", err)
	}
}

// GetSessionHandler は入力中セッションを返します。
func GetSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSession(w, m.Current())
	}
}

// SetStaffNameHandler は担当者名を保存します。
func SetStaffNameHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			StaffName string `json:"staffName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		m.SetStaffName(payload.StaffName)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "担当者名を保存しました。"})
	}
}

// AddProductHandler はマスタの商品をセッションに追加します。
// 既に同じ商品がある場合は状態を変えず added=false を返します。
func AddProductHandler(m *Manager, products ProductFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID int `json:"productId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		p, ok := products.Find(payload.ProductID)
		if !ok {
			http.Error(w, "指定された商品がマスタにありません。", http.StatusNotFound)
			return
		}
		added := m.AddProduct(p)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"added": added})
	}
}

// RemoveProductHandler はセッションから商品を外します。
func RemoveProductHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/session/remove/")
		productID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "商品IDが不正です。", http.StatusBadRequest)
			return
		}
		m.RemoveProduct(productID)
		writeSession(w, m.Current())
	}
}

// ロット行の入力はUI都合で数値にも文字列にもなるため、どちらも受けて
// 下限1へ丸めます。
type lotPayload struct {
	ID             int64           `json:"id"`
	LotCount       json.RawMessage `json:"lotCount"`
	QuantityPerLot json.RawMessage `json:"quantityPerLot"`
}

func coerceCount(raw json.RawMessage) int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 1
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	return ClampCount(s)
}

// UpdateLotsHandler は1商品のロット列を丸ごと差し替えます。
func UpdateLotsHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID int          `json:"productId"`
			Lots      []lotPayload `json:"lots"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		lots := make([]model.LotRow, len(payload.Lots))
		for i, lp := range payload.Lots {
			lots[i] = model.LotRow{
				ID:             lp.ID,
				LotCount:       coerceCount(lp.LotCount),
				QuantityPerLot: coerceCount(lp.QuantityPerLot),
			}
		}
		if !m.UpdateLots(payload.ProductID, lots) {
			http.Error(w, "指定された商品はセッションにありません。", http.StatusNotFound)
			return
		}
		writeSession(w, m.Current())
	}
}

// NewLotRowHandler は採番済みの初期ロット行を1行返します。
func NewLotRowHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(NewLotRow(m.IDs()))
	}
}

// SummaryHandler は確定プレビュー（小計1以上の商品と総数）を返します。
func SummaryHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, staff := m.Finalize()
		w.Header().Set("Content-Type", "application/json")
		if items == nil {
			items = []model.InventoryItem{}
		}
		json.NewEncoder(w).Encode(sessionView{StaffName: staff, Items: items, GrandTotal: total})
	}
}

// ClearSessionHandler は新規入力の開始に備えて入力中データを破棄します。
// 破棄してよいかの確認はUI側のダイアログで済ませてから呼ばれます。
func ClearSessionHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(m.Current().StaffName) == "" {
			http.Error(w, "担当者名を入力してください。", http.StatusBadRequest)
			return
		}
		m.ClearItems()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "新しい入力を開始しました。"})
	}
}
