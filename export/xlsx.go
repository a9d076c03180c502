package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "在庫データ"

// WriteXLSX は出力行をExcelブックとして書き出します。
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := []interface{}{"商品名", "JANコード", "日付", "合計個数", "担当者"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		record := []interface{}{
			row.ProductName,
			row.JanCode,
			row.Date,
			row.TotalCount,
			row.StaffName,
		}
		if err := f.SetSheetRow(sheetName, cell, &record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
