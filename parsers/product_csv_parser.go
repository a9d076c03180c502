package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"tana/model"
)

// ParseProductCSV は商品マスタCSVを読み込みます。必須ヘッダーは
// 「商品名」「JAN下4桁」で、「分類」は任意です。JAN下4桁が数字4桁で
// ない行や商品名が空の行は読み飛ばします。
func ParseProductCSV(r io.Reader) ([]model.Product, error) {
	decoded, err := DecodeJapaneseCSV(r)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSVファイルが空です")
	}
	if err != nil {
		return nil, fmt.Errorf("CSVヘッダーの読み取りに失敗: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"商品名", "JAN下4桁"})
	if err != nil {
		return nil, err
	}
	idxCategory, hasCategory := colIndex["分類"]

	var products []model.Product
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: CSV %d行目の読み取りエラー (スキップ): %v", line, err)
			continue
		}

		get := func(idx int) string {
			if idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		name := get(colIndex["商品名"])
		janSuffix := get(colIndex["JAN下4桁"])
		if name == "" || !validSuffix(janSuffix) {
			log.Printf("WARN: CSV %d行目は商品名またはJAN下4桁が不正のためスキップ", line)
			continue
		}

		p := model.Product{Name: name, JanSuffix: janSuffix}
		if hasCategory {
			p.Category = get(idxCategory)
		}
		products = append(products, p)
	}
	return products, nil
}

func validSuffix(s string) bool {
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
