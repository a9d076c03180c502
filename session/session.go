package session

import (
	"tana/model"
)

// このファイルは入力中セッションに対する純粋な状態遷移だけを持ちます。
// 永続化は Manager 側の仕事です。

// AddItem は商品を1件追加します。同じ productId が既にあれば状態は
// 変えず false を返します（スクロール等の扱いはUI側の関心事）。
// 新しい商品は常に末尾に追加され、並びは追加順を保ちます。
func AddItem(items []model.InventoryItem, p model.Product, ids *LotIDSource) ([]model.InventoryItem, bool) {
	for _, item := range items {
		if item.ProductID == p.ID {
			return items, false
		}
	}
	lot := NewLotRow(ids)
	return append(items, model.InventoryItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		JanSuffix:   p.JanSuffix,
		Lots:        []model.LotRow{lot},
		Subtotal:    lot.Subtotal(),
	}), true
}

// RemoveItem は productId の一致する商品を外します。なければそのままです。
func RemoveItem(items []model.InventoryItem, productID int) []model.InventoryItem {
	out := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// SetLots は該当商品のロット列を丸ごと差し替え、小計を再計算します。
// 空のロット列は小計0になりますが、商品自体は外しません（削除は明示操作）。
func SetLots(items []model.InventoryItem, productID int, lots []model.LotRow, ids *LotIDSource) ([]model.InventoryItem, bool) {
	for i, item := range items {
		if item.ProductID == productID {
			clamped := ClampLots(lots, ids)
			items[i].Lots = clamped
			items[i].Subtotal = LotsTotal(clamped)
			return items, true
		}
	}
	return items, false
}

// GrandTotal は全商品の小計の総和です。常にその場で再計算します。
func GrandTotal(items []model.InventoryItem) int {
	total := 0
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// FinalizeItems は小計が1以上の商品だけを返します。ロットを全部消して
// 小計0になった商品はこの境界で黙って落ちます。
func FinalizeItems(items []model.InventoryItem) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Subtotal > 0 {
			out = append(out, item)
		}
	}
	return out
}
