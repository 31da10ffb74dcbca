package main

import (
	"context"
	"flag"

	"github.com/icrowley/fake"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/krew-solutions/sea-go/examples/invoicing"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := invoicing.DefaultConfig()
	if *configPath != "" {
		if cfg, err = invoicing.LoadConfig(*configPath); err != nil {
			log.Fatal("unable to load config", zap.Error(err))
		}
	}

	var store invoicing.Store = invoicing.NewMemoryStore(map[int]int{42: 1, 77: 2})
	if cfg.Postgres.DSN != "" {
		pool, err := pgxpool.New(context.Background(), cfg.Postgres.DSN)
		if err != nil {
			log.Fatal("unable to connect to postgres", zap.Error(err))
		}
		defer pool.Close()
		store = invoicing.NewPgStore(pool)
	}

	catalog := invoicing.Catalog{42: fake.ProductName(), 77: fake.ProductName()}
	app, err := invoicing.NewApp(cfg, log, store, catalog, prometheus.NewRegistry())
	if err != nil {
		log.Fatal("unable to wire invoicing", zap.Error(err))
	}

	id, err := app.CreateInvoice(7, 42)
	if err != nil {
		log.Fatal("unable to create invoice", zap.Error(err))
	}
	log.Info("invoice created", zap.String("invoice_id", id.String()))

	// Stock for product 42 is exhausted now; the inventory observer's error
	// surfaces here exactly as if we had called the store ourselves.
	if _, err := app.CreateInvoice(8, 42); err != nil {
		log.Warn("invoice rejected", zap.Error(err))
	}

	for _, message := range app.Notifications(7) {
		log.Info("customer notification", zap.String("message", message))
	}
}
