// The seeder copies the embedded fixture set into the MySQL store so the
// API can run with STORE_DRIVER=mysql against the same data the memory
// store serves.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"alx_stays/internal/adapters/observability"
	"alx_stays/internal/shared"
	"alx_stays/internal/storage/memstore"
	mysqlstore "alx_stays/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	src, err := memstore.New()
	if err != nil {
		log.Fatal().Err(err).Msg("load fixtures failed")
	}
	props, err := src.ListProperties(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list fixtures failed")
	}

	dst := mysqlstore.New(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, p := range props {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			defer sem.Release(1)

			prop, err := src.GetProperty(ctx, id)
			if err != nil {
				log.Warn().Str("id", id).Err(err).Msg("read fixture failed")
				return
			}
			if err := dst.UpsertProperty(ctx, prop); err != nil {
				log.Warn().Str("id", id).Err(err).Msg("seed property failed")
				return
			}
			rs, err := src.ListReviews(ctx, id)
			if err != nil {
				log.Warn().Str("id", id).Err(err).Msg("read fixture reviews failed")
				return
			}
			for _, rv := range rs {
				if err := dst.AddReview(ctx, rv); err != nil {
					log.Warn().Str("id", id).Str("review", rv.ID).Err(err).Msg("seed review failed")
				}
			}
			log.Info().Str("id", id).Int("reviews", len(rs)).Msg("seed ok")
		}(p.ID)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
