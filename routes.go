package main

import (
	"net/http"

	"tana/export"
	"tana/history"
	"tana/master"
	"tana/session"
)

func SetupRoutes(mux *http.ServeMux, m *session.Manager, archive *history.Archive, masters *master.Store) {

	// 入力中セッション
	mux.HandleFunc("/api/session", session.GetSessionHandler(m))
	mux.HandleFunc("/api/session/staff", session.SetStaffNameHandler(m))
	mux.HandleFunc("/api/session/add", session.AddProductHandler(m, masters))
	mux.HandleFunc("/api/session/remove/", session.RemoveProductHandler(m))
	mux.HandleFunc("/api/session/lots", session.UpdateLotsHandler(m))
	mux.HandleFunc("/api/session/lot/new", session.NewLotRowHandler(m))
	mux.HandleFunc("/api/session/summary", session.SummaryHandler(m))
	mux.HandleFunc("/api/session/clear", session.ClearSessionHandler(m))
	mux.HandleFunc("/api/session/finalize", history.FinalizeSessionHandler(m, archive))

	// 履歴
	mux.HandleFunc("/api/history", history.ListHistoryHandler(archive))
	mux.HandleFunc("/api/history/delete/", history.DeleteHistoryHandler(archive))
	mux.HandleFunc("/api/history/delete_all", history.DeleteAllHistoryHandler(archive))
	mux.HandleFunc("/api/history/export/csv", export.HistoryCSVHandler(archive))
	mux.HandleFunc("/api/history/export/xlsx", export.HistoryXLSXHandler(archive))

	// エクスポート（入力中セッションの確定ビュー）
	mux.HandleFunc("/api/export/csv", export.SessionCSVHandler(m))
	mux.HandleFunc("/api/export/xlsx", export.SessionXLSXHandler(m))

	// 商品マスタ
	mux.HandleFunc("/api/products", master.ListProductsHandler(masters))
	mux.HandleFunc("/api/products/create", master.CreateProductHandler(masters))
	mux.HandleFunc("/api/products/update", master.UpdateProductHandler(masters))
	mux.HandleFunc("/api/products/delete/", master.DeleteProductHandler(masters))
	mux.HandleFunc("/api/products/import", master.ImportProductsCSVHandler(masters))
	mux.HandleFunc("/api/products/export", master.ExportProductsCSVHandler(masters))

	// 設定
	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
