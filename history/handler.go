package history

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"tana/model"
	"tana/session"
)

// ListHistoryHandler は履歴一覧を新しい順で返します。総数は保存値を
// 信用せず、毎回ロットから計算し直します。
func ListHistoryHandler(a *Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := a.List()
		for i := range records {
			records[i].TotalQuantity = RecomputedTotal(records[i])
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			log.Printf("Error encoding history list: %v", err)
		}
	}
}

// FinalizeSessionHandler は入力中セッションを履歴へ確定します。
// 小計0の商品はここで落ち、確定後に入力中スロットは空になります。
func FinalizeSessionHandler(m *session.Manager, a *Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, total, staffName := m.Finalize()
		if strings.TrimSpace(staffName) == "" {
			http.Error(w, "担当者名を入力してください。", http.StatusBadRequest)
			return
		}
		if len(items) == 0 {
			http.Error(w, "保存できる入力がありません。", http.StatusBadRequest)
			return
		}
		rec := NewRecord(items, total, staffName, time.Now())
		a.Append(rec)
		m.Clear()
		log.Printf("Session finalized: %d items, total %d (record %s)", len(items), total, rec.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "保存しました。", "id": rec.ID})
	}
}

// DeleteHistoryHandler は履歴を1件削除します。
func DeleteHistoryHandler(a *Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/history/delete/")
		if id == "" {
			http.Error(w, "削除する履歴IDが指定されていません。", http.StatusBadRequest)
			return
		}
		if !a.DeleteOne(id) {
			http.Error(w, "指定された履歴が見つかりません。", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました。"})
	}
}

// DeleteAllHistoryHandler は履歴を全件削除します。
func DeleteAllHistoryHandler(a *Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.DeleteAll()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "履歴を全件削除しました。"})
	}
}

// RecomputedTotal は保存済みレコードの総数をロットから計算し直します。
func RecomputedTotal(rec model.HistoryRecord) int {
	total := 0
	for _, item := range rec.Items {
		total += session.LotsTotal(item.Lots)
	}
	return total
}
