package session

import (
	"encoding/json"

	"tana/model"
)

// 永続化済みスナップショットの緩い形。旧スキーマのロット行
// {id, lot:"2", quantity:5} と現行の {id, lotCount, quantityPerLot} の
// 両方を受け付けます。
type rawItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	JanSuffix   string          `json:"janSuffix"`
	Lots        json.RawMessage `json:"lots"`
}

type rawLot struct {
	ID             int64   `json:"id"`
	LotCount       *int    `json:"lotCount"`
	QuantityPerLot *int    `json:"quantityPerLot"`
	Lot            *string `json:"lot"`
	Quantity       *int    `json:"quantity"`
}

// RehydrateItems は保存済みブロブから入力中セッションを復元します。
// 例外的な形は可能な限り小さい範囲で既定値に落とし、決して失敗しません。
// ブロブ全体が壊れている場合は空のセッションになります。
func RehydrateItems(data []byte, ids *LotIDSource) []model.InventoryItem {
	if len(data) == 0 {
		return nil
	}
	var raws []rawItem
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil
	}
	items := make([]model.InventoryItem, 0, len(raws))
	for _, r := range raws {
		lots := rehydrateLots(r.Lots, ids)
		items = append(items, model.InventoryItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			JanSuffix:   r.JanSuffix,
			Lots:        lots,
			Subtotal:    LotsTotal(lots),
		})
	}
	return items
}

func rehydrateLots(data json.RawMessage, ids *LotIDSource) []model.LotRow {
	var raws []rawLot
	if len(data) == 0 || json.Unmarshal(data, &raws) != nil || len(raws) == 0 {
		// lots が欠落・破損していたら初期1行で立て直す
		return []model.LotRow{NewLotRow(ids)}
	}
	lots := make([]model.LotRow, len(raws))
	for i, r := range raws {
		lot := model.LotRow{ID: r.ID, LotCount: 1, QuantityPerLot: 1}
		if r.LotCount != nil {
			lot.LotCount = *r.LotCount
		}
		switch {
		case r.QuantityPerLot != nil:
			lot.QuantityPerLot = *r.QuantityPerLot
		case r.Quantity != nil:
			// 旧スキーマ: quantity を入数として引き継ぐ。lot(文字列)は
			// ラベルでしかなかったためロット数は1始まりに戻す。
			lot.QuantityPerLot = *r.Quantity
		}
		lot.LotCount = clampInt(lot.LotCount)
		lot.QuantityPerLot = clampInt(lot.QuantityPerLot)
		if lot.ID == 0 {
			lot.ID = ids.Next()
		}
		lots[i] = lot
	}
	return lots
}
