package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var testRows = []Row{
	{ProductName: "商品A", JanCode: "1234", Date: "08/30", TotalCount: 11, StaffName: "山田"},
	{ProductName: "商品B", JanCode: "5678", Date: "08/30", TotalCount: 3, StaffName: "山田"},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testRows))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	reader := csv.NewReader(bytes.NewReader(data[3:]))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"商品名", "JANコード", "日付", "合計個数", "担当者"}, records[0])
	require.Equal(t, []string{"商品A", "1234", "08/30", "11", "山田"}, records[1])
}

func TestWriteCSVShiftJIS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSVShiftJIS(&buf, testRows))

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), buf.Bytes())
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(decoded))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "商品A", records[1][0])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testRows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("在庫データ", "A2")
	require.NoError(t, err)
	require.Equal(t, "商品A", got)

	count, err := f.GetCellValue("在庫データ", "D2")
	require.NoError(t, err)
	require.Equal(t, "11", count)
}
