package main

import (
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "alx_stays/internal/adapters/http_server"
	"alx_stays/internal/adapters/observability"
	"alx_stays/internal/adapters/payment"
	redisad "alx_stays/internal/adapters/redis"
	"alx_stays/internal/app"
	"alx_stays/internal/domain"
	"alx_stays/internal/shared"
	"alx_stays/internal/storage/memstore"
	mysqlstore "alx_stays/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	// store, selected by explicit configuration
	var store domain.PropertyStore
	switch cfg.StoreDriver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		store = mysqlstore.New(db)
	default:
		ms, err := memstore.New()
		if err != nil {
			log.Fatal().Err(err).Msg("load fixture store failed")
		}
		log.Info().Msg("using in-memory fixture store")
		store = ms
	}

	// cache is optional; with no redis address the services hit the store
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	pay := payment.NewSimulator(cfg.ApproveRate, time.Now().UnixNano())
	c := app.NewCommandService(store, cache, pay)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreDriver).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
