package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tana/model"
	"tana/state"
)

// Archive は確定済みセッションの追記専用ログです。並びは常に新しい順で、
// どの操作も履歴配列全体を1回で書き戻します。
type Archive struct {
	mu sync.Mutex
	gw *state.Gateway
}

func NewArchive(gw *state.Gateway) *Archive {
	return &Archive{gw: gw}
}

// NewRecord は確定内容から不変の履歴レコードを作ります。小計は保存せず、
// 読み出し時にロットから再計算します。
func NewRecord(items []model.InventoryItem, total int, staffName string, now time.Time) model.HistoryRecord {
	rec := model.HistoryRecord{
		ID:            uuid.NewString(),
		Date:          now.Format(time.RFC3339),
		StaffName:     staffName,
		Items:         make([]model.HistoryItem, len(items)),
		TotalQuantity: total,
	}
	for i, item := range items {
		rec.Items[i] = model.HistoryItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			JanSuffix:   item.JanSuffix,
			Lots:        item.Lots,
		}
	}
	return rec
}

// List は履歴を新しい順で返します。
func (a *Archive) List() []model.HistoryRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return state.Load(a.gw, state.KeyHistory, []model.HistoryRecord{})
}

// Append はレコードを先頭に積んで保存します。
func (a *Archive) Append(rec model.HistoryRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	records := state.Load(a.gw, state.KeyHistory, []model.HistoryRecord{})
	records = append([]model.HistoryRecord{rec}, records...)
	state.Save(a.gw, state.KeyHistory, records)
}

// Get は id の一致するレコードを返します。
func (a *Archive) Get(id string) (model.HistoryRecord, bool) {
	for _, rec := range a.List() {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.HistoryRecord{}, false
}

// DeleteOne は id の一致するレコードを1件消します。
func (a *Archive) DeleteOne(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	records := state.Load(a.gw, state.KeyHistory, []model.HistoryRecord{})
	out := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		out = append(out, rec)
	}
	if found {
		state.Save(a.gw, state.KeyHistory, out)
	}
	return found
}

// DeleteAll は履歴を空にします。
func (a *Archive) DeleteAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	state.Save(a.gw, state.KeyHistory, []model.HistoryRecord{})
}
