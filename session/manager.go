package session

import (
	"strings"
	"sync"

	"tana/model"
	"tana/state"
)

// Session は入力中セッションの現在値です。
type Session struct {
	StaffName string                `json:"staffName"`
	Items     []model.InventoryItem `json:"items"`
}

// Manager は「読み込み→遷移→書き戻し」の1往復を直列化します。
// セッションの置き場は常に1つで、下書きの積み重ねはありません。
// 変更系の操作はすべて即座にゲートウェイへ書き戻します。
type Manager struct {
	mu  sync.Mutex
	gw  *state.Gateway
	ids *LotIDSource
}

func NewManager(gw *state.Gateway) *Manager {
	return &Manager{gw: gw, ids: NewLotIDSource()}
}

// IDs はロット行の採番器を返します（ハンドラ・テスト用）。
func (m *Manager) IDs() *LotIDSource {
	return m.ids
}

func (m *Manager) load() Session {
	raw, _ := m.gw.Raw(state.KeyInProgress)
	return Session{
		StaffName: m.gw.RawString(state.KeyStaffName),
		Items:     RehydrateItems(raw, m.ids),
	}
}

func (m *Manager) persistItems(items []model.InventoryItem) {
	state.Save(m.gw, state.KeyInProgress, items)
}

// Current は永続スロットから復元したセッションを返します。
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// SetStaffName は担当者名を保存します。前後の空白は落とします。
func (m *Manager) SetStaffName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gw.SaveRaw(state.KeyStaffName, strings.TrimSpace(name))
}

// AddProduct は商品を追加して保存します。既存の productId なら何もせず
// false を返します。
func (m *Manager) AddProduct(p model.Product) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.load()
	items, added := AddItem(s.Items, p, m.ids)
	if added {
		m.persistItems(items)
	}
	return added
}

// RemoveProduct は商品を外して保存します。
func (m *Manager) RemoveProduct(productID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.load()
	m.persistItems(RemoveItem(s.Items, productID))
}

// UpdateLots はロット列を差し替えて保存します。該当商品が無ければ false。
func (m *Manager) UpdateLots(productID int, lots []model.LotRow) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.load()
	items, found := SetLots(s.Items, productID, lots, m.ids)
	if found {
		m.persistItems(items)
	}
	return found
}

// Finalize は小計1以上の商品・総数・担当者名の組を返します。
// セッション自体はここでは消しません（履歴保存が済んでから Clear）。
func (m *Manager) Finalize() ([]model.InventoryItem, int, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.load()
	valid := FinalizeItems(s.Items)
	return valid, GrandTotal(valid), s.StaffName
}

// Clear は入力中データと担当者名のスロットを空にします。
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gw.Clear(state.KeyInProgress)
	m.gw.Clear(state.KeyStaffName)
}

// ClearItems は入力中データだけを消し、担当者名は残します。
func (m *Manager) ClearItems() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gw.Clear(state.KeyInProgress)
}
