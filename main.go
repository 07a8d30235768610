package main

import (
	"log"
	"net/http"
	"os"
	"planboard/config"
	"planboard/loader"
	"planboard/web"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("WARN: no .env file loaded: %v", err)
	}

	if _, err := config.LoadConfig(); err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}
	config.SetOverrides(os.Getenv("PORT"), os.Getenv("PLANBOARD_DB"), os.Getenv("PLANBOARD_SEED"))
	cfg := config.GetConfig()

	log.Println("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	log.Println("Database connection successful.")

	if err := loader.InitDatabase(dbConn, cfg.SeedFolderPath); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete.")

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./static"))))

	SetupRoutes(mux, dbConn)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "GET", "OPTIONS", "PUT", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	})
	handler := c.Handler(web.RequestLogger(mux))

	addr := cfg.ListenAddr
	log.Printf("Starting server on http://localhost%s", addr)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}
