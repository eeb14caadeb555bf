package main

import (
	auth "Railcalc/internal/auth"
	guide "Railcalc/internal/calc/guide"
	batch "Railcalc/internal/calc/premium/batch"
	importer "Railcalc/internal/calc/premium/importer"
	report "Railcalc/internal/calc/report"
	catalog "Railcalc/internal/catalog"
	config "Railcalc/internal/config"
	httpx "Railcalc/internal/httpx"
	logging "Railcalc/internal/logging"
	profile "Railcalc/internal/profile"
	repo "Railcalc/internal/repo"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

type deps struct {
	cfg     config.Config
	log     *slog.Logger
	db      *sql.DB
	service *guide.Service
}

func HandleList(router *mux.Router, d deps) {
	limiter := auth.NewIPRateLimiter(rate.Limit(d.cfg.RateLimit), d.cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	// mux отдаёт 404 вместо 405 на подроутере, если обработчик не задан
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, httpx.NewMethodNotAllowedError())
	})
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, httpx.NewNotFoundError("no such endpoint"))
	})

	guideH := &guide.Handler{Service: d.service, Log: d.log}
	api.HandleFunc("/calculate", guideH.Calc).Methods("POST")
	api.HandleFunc("/variants", guideH.Variants).Methods("GET")
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.Write(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// без базы нет учётных записей, отчёты и пакетный расчёт недоступны
	if !d.cfg.Accounts() {
		d.log.Warn("DATABASE_URL not set, account routes disabled")
		return
	}

	users := repo.NewPostgresUserDB(d.db)
	authEnv := &auth.Authenv{
		JWTkey: []byte(d.cfg.TokenKey),
		Repo:   users,
		Log:    d.log,
		Secure: d.cfg.TLS(),
	}
	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	profileH := &profile.ProfileHandler{Repo: users}
	reportH := &report.Handler{Service: d.service}
	batchH := &batch.Handler{Service: d.service}
	importH := &importer.Handler{Service: d.service}

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/report/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/report/xlsx", reportH.XLSX).Methods("POST")
	secureApi.HandleFunc("/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/batch/import", importH.Calc).Methods("POST")
	secureApi.HandleFunc("/batch/template", importH.Template).Methods("GET")
}

func catalogProvider(cfg config.Config, db *sql.DB) catalog.Provider {
	var src catalog.Provider
	if db != nil {
		src = repo.NewPostgresCatalogDB(db)
	} else {
		src = &catalog.File{Path: cfg.CatalogFile}
	}
	return catalog.NewCache(src, cfg.CatalogTTL)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", "err", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("database unavailable", "err", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	d := deps{
		cfg: cfg,
		log: log,
		db:  db,
		service: &guide.Service{
			Engine:  guide.NewEngine(log),
			Catalog: catalogProvider(cfg, db),
		},
	}

	router := mux.NewRouter()
	HandleList(router, d)
	handler := httpx.RequestID(httpx.Logger(log)(httpx.CORS(router)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "err", err)
	}
	wg.Wait()
	log.Info("server stopped")
}
