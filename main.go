package main

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"tana/browser"
	"tana/config"
	"tana/history"
	"tana/master"
	"tana/session"
	"tana/state"
	"tana/store"
)

var appTemplate *template.Template

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}

	log.Println("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()

	if err := store.InitSchema(dbConn); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete.")

	gw := state.New(store.NewSQLite(dbConn))
	manager := session.NewManager(gw)
	archive := history.NewArchive(gw)
	masters := master.NewStore(gw)

	appTemplate, err = template.ParseFiles("static/index.html")
	if err != nil {
		log.Fatalf("Failed to parse static/index.html: %v", err)
	}
	log.Println("HTML template loaded and parsed.")

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./static"))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := appTemplate.ExecuteTemplate(w, "index.html", nil); err != nil {
			log.Printf("Error executing main template: %v", err)
		}
	})

	SetupRoutes(mux, manager, archive, masters)

	addr := cfg.ListenAddr
	url := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		url = "http://" + addr
	}
	log.Printf("Starting server on %s", url)

	browser.Open(url, cfg.OpenAppWindow)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}
