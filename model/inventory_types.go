package model

// Product は商品マスタの1行です。JanSuffix はJANコードの下4桁を保持します。
type Product struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	JanSuffix string `json:"jan_suffix"`
	Category  string `json:"category"`
}

// LotRow は1商品に対する「ロット数 × 入数」の入力1行です。
// LotCount / QuantityPerLot は編集のたびに下限1へ丸められます。
type LotRow struct {
	ID             int64 `json:"id"`
	LotCount       int   `json:"lotCount"`
	QuantityPerLot int   `json:"quantityPerLot"`
}

func (l LotRow) Subtotal() int {
	return l.LotCount * l.QuantityPerLot
}

// InventoryItem は入力中セッションの1商品分です。商品名とJAN下4桁は
// 追加時点のスナップショットで、マスタをあとから消しても表示は保たれます。
// Subtotal はロット編集のたびに再計算される導出値です。
type InventoryItem struct {
	ProductID   int      `json:"productId"`
	ProductName string   `json:"productName"`
	JanSuffix   string   `json:"janSuffix"`
	Lots        []LotRow `json:"lots"`
	Subtotal    int      `json:"subtotal"`
}

// HistoryItem は履歴に保存する商品エントリです。Subtotal は保存せず、
// 読み出し側が Lots から再計算します。
type HistoryItem struct {
	ProductID   int      `json:"productId"`
	ProductName string   `json:"productName"`
	JanSuffix   string   `json:"janSuffix"`
	Lots        []LotRow `json:"lots"`
}

// HistoryRecord は確定済みセッションの不変スナップショットです。
type HistoryRecord struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	StaffName     string        `json:"staffName"`
	Items         []HistoryItem `json:"items"`
	TotalQuantity int           `json:"totalQuantity"`
}
