package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// 出力列。元のスプレッドシートと同じ並びです。
var csvHeader = []string{"商品名", "JANコード", "日付", "合計個数", "担当者"}

// WriteCSV は出力行をUTF-8(BOM付き)CSVとして書き出します。
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ProductName,
			row.JanCode,
			row.Date,
			strconv.Itoa(row.TotalCount),
			row.StaffName,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVShiftJIS は古い表計算ソフト向けにShift-JISで書き出します。
// BOMは付けません。
func WriteCSVShiftJIS(w io.Writer, rows []Row) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ProductName,
			row.JanCode,
			row.Date,
			strconv.Itoa(row.TotalCount),
			row.StaffName,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to encode CSV as Shift-JIS: %w", err)
	}
	_, err = w.Write(encoded)
	return err
}
