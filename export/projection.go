package export

import (
	"time"

	"tana/model"
	"tana/session"
)

// Row は出力1行分です。ロット明細は出さず、商品ごとの合計だけを並べます。
type Row struct {
	ProductName string
	JanCode     string
	Date        string // mm/dd
	TotalCount  int
	StaffName   string
}

// FromSession は確定ビュー（商品＋小計）から出力行を作ります。
func FromSession(items []model.InventoryItem, staffName string, now time.Time) []Row {
	date := now.Format("01/02")
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Row{
			ProductName: item.ProductName,
			JanCode:     item.JanSuffix,
			Date:        date,
			TotalCount:  item.Subtotal,
			StaffName:   staffName,
		}
	}
	return rows
}

// FromHistory は保存済みレコードから出力行を作ります。小計は保存されて
// いないため、ここでロットから計算し直します。保存日時が読めない場合は
// 日付欄を空にします。
func FromHistory(rec model.HistoryRecord) []Row {
	date := ""
	if t, err := time.Parse(time.RFC3339, rec.Date); err == nil {
		date = t.Format("01/02")
	}
	rows := make([]Row, len(rec.Items))
	for i, item := range rec.Items {
		rows[i] = Row{
			ProductName: item.ProductName,
			JanCode:     item.JanSuffix,
			Date:        date,
			TotalCount:  session.LotsTotal(item.Lots),
			StaffName:   rec.StaffName,
		}
	}
	return rows
}
