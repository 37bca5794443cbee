package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/config"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/dispatch"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/notify"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rates"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore/postgres"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore/supabase"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/scheduler"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/server"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/store"
)

const _cfgFilePath = "./configs/dinheiroglobal.yaml"

func main() {
	zapLogger, loggerSync, err := logger.NewZapLogger(logger.ParseLevel(os.Getenv("DG_LOG_LEVEL")))
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	if err := godotenv.Load(); err != nil {
		zapLogger.Warnf("can't detect .env file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadAppConfig(_cfgFilePath)
	if err != nil {
		zapLogger.Fatalf("%s: can't load app cfg", err)
	}

	var rows rowstore.Store
	switch cfg.Backend {
	case config.PostgresBackend:
		pgCfg := postgres.NewConfigFromEnv().Setup()
		db, err := postgres.NewDB(pgCfg)
		if err != nil {
			zapLogger.Fatalf("%s: can't connect to postgres", err)
		}
		defer db.Close()

		rs := postgres.NewRowStore(db, pgCfg, zapLogger.Named("postgres"))
		if err := rs.EnsureSchema(ctx); err != nil {
			zapLogger.Fatalf("%s: can't prepare postgres schema", err)
		}
		rows = rs
	default:
		client := supabase.NewClient(cfg.Supabase, zapLogger.Named("supabase"))
		if err := client.SignIn(ctx); err != nil {
			zapLogger.Fatalf("%s: can't sign in", err)
		}
		rows = client
	}

	notifier := notify.NewCenter(0)
	ratesSvc := rates.NewService(cfg.Rates, zapLogger.Named("rates"))
	if err := ratesSvc.Update(ctx); err != nil {
		zapLogger.Warnf("%s: keeping default usd/brl rate", err)
	}

	st := store.NewStore(rows, zapLogger.Named("store"))
	if err := st.Refresh(ctx); err != nil {
		zapLogger.Warnf("%s: initial snapshot refresh failed", err)
	}

	dispatcher := dispatch.NewDispatcher(rows, st, notifier, zapLogger.Named("dispatch"))

	sched := scheduler.NewScheduler(zapLogger.Named("scheduler"))
	if err := sched.AddJob(cfg.Rates.UpdateSpec, "rate-update", func() {
		if err := ratesSvc.Update(ctx); err != nil {
			zapLogger.Warnf("%s: scheduled rate update failed", err)
		}
	}); err != nil {
		zapLogger.Fatalf("%s: can't setup scheduler", err)
	}
	if cfg.Store.RefreshSpec != "" {
		if err := sched.AddJob(cfg.Store.RefreshSpec, "snapshot-refresh", func() {
			_ = st.Refresh(ctx)
		}); err != nil {
			zapLogger.Fatalf("%s: can't setup scheduler", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	srv := server.NewServer(ctx, cfg.Server, st, dispatcher, ratesSvc, notifier, zapLogger.Named("server"))
	zapLogger.Infof("listening on :%s", cfg.Server.Port)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Errorf("%s: server stopped", err)
	}
}
