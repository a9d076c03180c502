package export

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tana/history"
	"tana/session"
)

func sendFile(w http.ResponseWriter, buf *bytes.Buffer, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	w.Write(buf.Bytes())
}

func writeCSVResponse(w http.ResponseWriter, r *http.Request, rows []Row, filename string) {
	var buf bytes.Buffer
	var err error
	if r.URL.Query().Get("encoding") == "sjis" {
		err = WriteCSVShiftJIS(&buf, rows)
	} else {
		err = WriteCSV(&buf, rows)
	}
	if err != nil {
		http.Error(w, "CSVの書き出しに失敗: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendFile(w, &buf, filename, "text/csv; charset=utf-8")
}

func writeXLSXResponse(w http.ResponseWriter, rows []Row, filename string) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, rows); err != nil {
		http.Error(w, "Excelファイルの作成に失敗: "+err.Error(), http.StatusInternalServerError)
		return
	}
	sendFile(w, &buf, filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// SessionCSVHandler は入力中セッションの確定ビューをCSVで出力します。
func SessionCSVHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, _, staffName := m.Finalize()
		rows := FromSession(items, staffName, time.Now())
		filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("2006-01-02"))
		writeCSVResponse(w, r, rows, filename)
	}
}

// SessionXLSXHandler は入力中セッションの確定ビューをExcelで出力します。
func SessionXLSXHandler(m *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, _, staffName := m.Finalize()
		rows := FromSession(items, staffName, time.Now())
		filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
		writeXLSXResponse(w, rows, filename)
	}
}

func historyRows(a *history.Archive, r *http.Request) ([]Row, string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		return nil, "履歴IDが指定されていません。", false
	}
	rec, ok := a.Get(id)
	if !ok {
		return nil, "指定された履歴が見つかりません。", false
	}
	return FromHistory(rec), "", true
}

// HistoryCSVHandler は保存済み履歴1件をCSVで出力します。
func HistoryCSVHandler(a *history.Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, msg, ok := historyRows(a, r)
		if !ok {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("2006-01-02"))
		writeCSVResponse(w, r, rows, filename)
	}
}

// HistoryXLSXHandler は保存済み履歴1件をExcelで出力します。
func HistoryXLSXHandler(a *history.Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, msg, ok := historyRows(a, r)
		if !ok {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
		writeXLSXResponse(w, rows, filename)
	}
}
