package master

import (
	"sort"
	"strings"
	"sync"

	"tana/model"
	"tana/state"
)

// Store は商品マスタの置き場です。product-master スロットの配列全体を
// 操作のたびに書き戻します。
type Store struct {
	mu sync.Mutex
	gw *state.Gateway
}

func NewStore(gw *state.Gateway) *Store {
	return &Store{gw: gw}
}

func (s *Store) load() []model.Product {
	return state.Load(s.gw, state.KeyProductMaster, []model.Product{})
}

func (s *Store) save(products []model.Product) {
	state.Save(s.gw, state.KeyProductMaster, products)
}

// List は登録順の商品一覧を返します。
func (s *Store) List() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Categories は登録済み分類の一覧を重複なしで返します。
func (s *Store) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.List() {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Find は id の一致する商品を返します。
func (s *Store) Find(id int) (model.Product, bool) {
	for _, p := range s.List() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func nextID(products []model.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Create は新しい商品を登録します。IDは既存の最大値+1を割り当てます。
func (s *Store) Create(name, janSuffix, category string) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.load()
	p := model.Product{
		ID:        nextID(products),
		Name:      strings.TrimSpace(name),
		JanSuffix: strings.TrimSpace(janSuffix),
		Category:  strings.TrimSpace(category),
	}
	s.save(append(products, p))
	return p
}

// Update は id の一致する商品を差し替えます。
func (s *Store) Update(p model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.load()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			s.save(products)
			return true
		}
	}
	return false
}

// Delete は商品をマスタから消します。入力中セッションに残った参照は
// 追加時スナップショットの名前とJAN下4桁でそのまま表示されます。
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.load()
	out := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	if found {
		s.save(out)
	}
	return found
}

// Import はパース済みの商品をまとめて登録します。商品名とJAN下4桁が
// 同じものは重複として読み飛ばし、登録件数を返します。
func (s *Store) Import(rows []model.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.load()
	type key struct{ name, jan string }
	seen := map[key]bool{}
	for _, p := range products {
		seen[key{p.Name, p.JanSuffix}] = true
	}
	added := 0
	for _, row := range rows {
		k := key{row.Name, row.JanSuffix}
		if seen[k] {
			continue
		}
		seen[k] = true
		row.ID = nextID(products)
		products = append(products, row)
		added++
	}
	if added > 0 {
		s.save(products)
	}
	return added
}

// ValidJanSuffix はJAN下4桁の形式（数字ちょうど4桁）を検査します。
func ValidJanSuffix(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
