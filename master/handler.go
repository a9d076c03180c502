package master

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tana/model"
	"tana/parsers"
)

// ListProductsHandler は商品マスタ一覧と分類一覧を返します。
func ListProductsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := s.List()
		categories := s.Categories()
		if categories == nil {
			categories = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"products":   products,
			"categories": categories,
		}); err != nil {
			log.Printf("Error encoding product master list: %v", err)
		}
	}
}

type productInput struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	JanSuffix string `json:"jan_suffix"`
	Category  string `json:"category"`
}

func (in productInput) validate() string {
	if strings.TrimSpace(in.Name) == "" {
		return "商品名は必須です。"
	}
	if !ValidJanSuffix(strings.TrimSpace(in.JanSuffix)) {
		return "JAN下4桁は数字4桁で入力してください。"
	}
	return ""
}

// CreateProductHandler は商品を新規登録します。
func CreateProductHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in productInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if msg := in.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		p := s.Create(in.Name, in.JanSuffix, in.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	}
}

// UpdateProductHandler は商品マスタを1件更新します。
func UpdateProductHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in productInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if msg := in.validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		p := model.Product{
			ID:        in.ID,
			Name:      strings.TrimSpace(in.Name),
			JanSuffix: strings.TrimSpace(in.JanSuffix),
			Category:  strings.TrimSpace(in.Category),
		}
		if !s.Update(p) {
			http.Error(w, "指定された商品が見つかりません。", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

// DeleteProductHandler は商品を削除します。入力中セッションからの参照は
// 残りますが、スナップショット表示のため画面は壊れません。
func DeleteProductHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/api/products/delete/")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "商品IDが不正です。", http.StatusBadRequest)
			return
		}
		if !s.Delete(id) {
			http.Error(w, "指定された商品が見つかりません。", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました。"})
	}
}

// ImportProductsCSVHandler は商品マスタCSVを取り込みます。
func ImportProductsCSVHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "CSVファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		rows, err := parsers.ParseProductCSV(file)
		if err != nil {
			http.Error(w, "CSVファイルの解析に失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(rows) == 0 {
			http.Error(w, "CSVから読み込むデータがありません。", http.StatusBadRequest)
			return
		}

		added := s.Import(rows)
		log.Printf("Product master import: %d rows parsed, %d added", len(rows), added)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": fmt.Sprintf("%d件の商品を登録しました。", added),
		})
	}
}

// ExportProductsCSVHandler は商品マスタをCSVでダウンロードさせます。
func ExportProductsCSVHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM
		writer := csv.NewWriter(&buf)

		if err := writer.Write([]string{"商品名", "JAN下4桁", "分類"}); err != nil {
			http.Error(w, "CSVヘッダーの書き込みに失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		for _, p := range s.List() {
			if err := writer.Write([]string{p.Name, p.JanSuffix, p.Category}); err != nil {
				log.Printf("WARN: Failed to write product row to CSV (ID: %d): %v", p.ID, err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			http.Error(w, "CSVの書き出しに失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("商品マスタ_%s.csv", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(buf.Bytes())
	}
}
