package session

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"tana/model"
)

// LotIDSource はロット行IDの採番器です。現在時刻(ミリ秒)を種に、
// 同一ミリ秒内に連続生成しても必ず単調増加するようにします。
type LotIDSource struct {
	mu   sync.Mutex
	last int64
}

func NewLotIDSource() *LotIDSource {
	return &LotIDSource{}
}

func (s *LotIDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// NewLotRow はロット数1・入数1の初期行を返します。
func NewLotRow(ids *LotIDSource) model.LotRow {
	return model.LotRow{ID: ids.Next(), LotCount: 1, QuantityPerLot: 1}
}

// ClampCount は数値入力文字列を整数化し、下限1へ丸めます。
// 数値でない・1未満の入力はエラーにせず1に補正します。
func ClampCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// clampInt は整数値を下限1へ丸めます。
func clampInt(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ロット行の編集可能フィールド名。
const (
	FieldLotCount       = "lotCount"
	FieldQuantityPerLot = "quantityPerLot"
)

// UpdateLotField は1フィールドだけ差し替えた行を返します。未知のフィールド
// 名は無視して元の行を返します。
func UpdateLotField(row model.LotRow, field, raw string) model.LotRow {
	switch field {
	case FieldLotCount:
		row.LotCount = ClampCount(raw)
	case FieldQuantityPerLot:
		row.QuantityPerLot = ClampCount(raw)
	}
	return row
}

// ClampLots は全行の両フィールドを下限1に揃えたコピーを返します。
// IDが未採番(0)の行には採番します。
func ClampLots(lots []model.LotRow, ids *LotIDSource) []model.LotRow {
	out := make([]model.LotRow, len(lots))
	for i, lot := range lots {
		if lot.ID == 0 {
			lot.ID = ids.Next()
		}
		lot.LotCount = clampInt(lot.LotCount)
		lot.QuantityPerLot = clampInt(lot.QuantityPerLot)
		out[i] = lot
	}
	return out
}

// LotsTotal はロット行の小計（ロット数×入数の総和）を返します。
func LotsTotal(lots []model.LotRow) int {
	total := 0
	for _, lot := range lots {
		total += lot.Subtotal()
	}
	return total
}
