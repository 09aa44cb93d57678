package main

import (
	auth "Solara/internal/auth"
	estimator "Solara/internal/estimator"
	batch "Solara/internal/estimator/batch"
	importer "Solara/internal/estimator/importer"
	export "Solara/internal/export"
	history "Solara/internal/history"
	reference "Solara/internal/reference"
	report "Solara/internal/report"
	repo "Solara/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	// The calculator frontend is served from this process, so same-origin
	// covers normal use; ALLOWED_ORIGIN opens the API to a hosted UI.
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal("schema init error:", err)
	}

	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	estimatorH := &estimator.Handler{}
	referenceH := &reference.Handler{}

	api.HandleFunc("/tools/solar/calc", estimatorH.Calc).Methods("POST")
	api.HandleFunc("/reference/irradiance", referenceH.Irradiance).Methods("GET")
	api.HandleFunc("/reference/tips", referenceH.Tips).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}
	historyH := &history.Handler{Repo: store}

	secureApi.HandleFunc("/tools/solar/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/solar/import", importerH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")

	secureApi.HandleFunc("/estimates", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/estimates", historyH.List).Methods("GET")
	secureApi.HandleFunc("/estimates/{id}", historyH.Get).Methods("GET")
	secureApi.HandleFunc("/estimates/{id}", historyH.Delete).Methods("DELETE")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped cleanly")

	wg.Wait()
}
