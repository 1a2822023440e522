package main

import (
	auth "AceMix/internal/auth"
	export "AceMix/internal/calc/export"
	mix "AceMix/internal/calc/mix"
	batch "AceMix/internal/calc/premium/batch"
	exporter "AceMix/internal/calc/premium/exporter"
	importer "AceMix/internal/calc/premium/importer"
	report "AceMix/internal/calc/report"
	pay "AceMix/internal/pay"
	profile "AceMix/internal/profile"
	repo "AceMix/internal/repo"
	session "AceMix/internal/session"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
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
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	payH := &pay.Handler{
		Client: pay.NewClient(os.Getenv("FLW_SECRET_KEY"), os.Getenv("FLW_VERIF_HASH")),
		Repo:   userRepo,
	}

	limiter := auth.NewIPRateLimiter(1, 3)

	// Provider deliveries burst from shared egress IPs; the webhook stays
	// outside the per-IP limiter so grants are not dropped. It authenticates
	// by signature instead.
	mux.HandleFunc("/api/pay/webhook", payH.Webhook).Methods("POST")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware, authEnv.PremiumMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/premium/checkout", payH.Checkout).Methods("POST")

	mixH := &mix.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exporterH := &exporter.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	sessionH := &session.Handler{Store: session.NewStore()}

	secureApi.HandleFunc("/tools/mix/calc", mixH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/mix/export/csv", exportH.CSV).Methods("POST")
	secureApi.HandleFunc("/tools/mix/report/pdf", reportH.Generate).Methods("POST")

	proApi := secureApi.NewRoute().Subrouter()
	proApi.Use(auth.RequirePremium)

	proApi.HandleFunc("/tools/mix/batch", batchH.Mix).Methods("POST")
	proApi.HandleFunc("/tools/mix/import", importerH.Mix).Methods("POST")
	proApi.HandleFunc("/tools/mix/export/xlsx", exporterH.Xlsx).Methods("POST")

	secureApi.HandleFunc("/designs", sessionH.Create).Methods("POST")
	secureApi.HandleFunc("/designs", sessionH.List).Methods("GET")
	secureApi.HandleFunc("/designs", sessionH.Clear).Methods("DELETE")
	secureApi.HandleFunc("/designs/report", sessionH.Report).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(http.StripPrefix("/auth", authFileServer))
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
	fmt.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
