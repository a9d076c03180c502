package state

import (
	"encoding/json"
	"log"

	"tana/store"
)

// 永続スロットのキー。リロードをまたぐ唯一の真実はこの4つだけです。
const (
	KeyStaffName     = "staff-name"
	KeyInProgress    = "inventory-in-progress"
	KeyHistory       = "inventory-history"
	KeyProductMaster = "product-master"
)

// Gateway は KeyValueStore の上に型付きの Load/Save/Clear を提供します。
// ストア側のエラーやJSONの破損は呼び出し元へは伝えず、既定値に落とします。
// 壊れたレガシーデータで画面を落とさないための唯一の防波堤がここです。
type Gateway struct {
	kv store.KeyValueStore
}

func New(kv store.KeyValueStore) *Gateway {
	return &Gateway{kv: kv}
}

// Raw はスロットの生バイト列を返します。不在・ストアエラーは (nil, false)。
func (g *Gateway) Raw(key string) ([]byte, bool) {
	value, ok, err := g.kv.Get(key)
	if err != nil {
		log.Printf("WARN: [state] failed to read slot '%s': %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

// Load はスロットをデコードして返します。不在・デコード失敗は def を返し、
// ストアには一切書き戻しません（壊れた値の黙殺上書きはしない）。
func Load[T any](g *Gateway, key string, def T) T {
	raw, ok := g.Raw(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("WARN: [state] slot '%s' holds malformed JSON, using default: %v", key, err)
		return def
	}
	return v
}

// Save はエンコードして無条件に書き込みます。
func Save[T any](g *Gateway, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("WARN: [state] failed to encode slot '%s': %v", key, err)
		return
	}
	if err := g.kv.Set(key, string(data)); err != nil {
		log.Printf("WARN: [state] failed to write slot '%s': %v", key, err)
	}
}

// SaveRaw は生文字列をそのまま書き込みます（担当者名スロット用）。
func (g *Gateway) SaveRaw(key, value string) {
	if err := g.kv.Set(key, value); err != nil {
		log.Printf("WARN: [state] failed to write slot '%s': %v", key, err)
	}
}

// RawString は生文字列スロットを返します。不在は空文字です。
func (g *Gateway) RawString(key string) string {
	raw, ok := g.Raw(key)
	if !ok {
		return ""
	}
	return string(raw)
}

func (g *Gateway) Clear(key string) {
	if err := g.kv.Remove(key); err != nil {
		log.Printf("WARN: [state] failed to clear slot '%s': %v", key, err)
	}
}
