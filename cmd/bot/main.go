package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/artdecor-nn/order-bot/internal/bot"
	"github.com/artdecor-nn/order-bot/internal/config"
	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/texts"
	"github.com/artdecor-nn/order-bot/internal/flow"
	"github.com/artdecor-nn/order-bot/internal/infra/db"
	httpx "github.com/artdecor-nn/order-bot/internal/infra/http"
	"github.com/artdecor-nn/order-bot/internal/infra/logger"
	"github.com/artdecor-nn/order-bot/internal/infra/mailer"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/example.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		managersStore directory.Store
		textsStore    texts.Store
		ready         func(context.Context) error
	)
	if cfg.Storage.Backend == "postgres" {
		if err := runMigrations(cfg.Storage.Postgres.DSN); err != nil {
			log.Error("migrations failed", "err", err)
			return
		}
		log.Info("migrations applied")

		pool, err := db.Connect(ctx, cfg.Storage.Postgres.DSN)
		if err != nil {
			log.Error("db connect failed", "err", err)
			return
		}
		defer pool.Close()
		log.Info("db connected")

		managersStore = directory.NewRepo(pool)
		textsStore = texts.NewRepo(pool)
		ready = pool.Ping
	} else {
		managersStore = directory.NewFileStore(cfg.Storage.File.ManagersPath)
		textsStore = texts.NewFileStore(cfg.Storage.File.TextsPath)
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram auth failed", "err", err)
		return
	}
	log.Info("telegram authorized", "bot", api.Self.UserName)

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)

	engine := flow.NewEngine(flow.EngineConfig{
		Transport: bot.NewTransport(api),
		Deliverer: bot.NewDelivery(api, mail, log),
		Directory: managersStore,
		Texts:     textsStore,
		Log:       log,

		Options: flow.Options{
			MainMenu:                cfg.Flow.MainMenu,
			CommentStep:             cfg.Flow.CommentStep,
			AddressStep:             cfg.Flow.AddressStep,
			TwoStageProof:           cfg.Flow.TwoStageProof,
			MaxAttachmentBytes:      cfg.Flow.MaxAttachmentMB << 20,
			MaxTotalAttachmentBytes: cfg.Flow.MaxTotalAttachmentMB << 20,
		},
		Catalogs: flow.Catalogs{
			FrescoCatalogs:          cfg.Catalogs.Fresco,
			FrescoMaterials:         cfg.Catalogs.FrescoMaterials,
			DesignerCatalogs:        cfg.Catalogs.Designer,
			DesignerPanelSizes:      cfg.Catalogs.DesignerPanelSizes,
			BackgroundCatalogs:      cfg.Catalogs.Background,
			BackgroundMaterials:     cfg.Catalogs.BackgroundMaterials,
			BackgroundHeightsVelour: intsToStrings(cfg.Catalogs.BackgroundHeightsVelour),
			BackgroundHeightsColore: intsToStrings(cfg.Catalogs.BackgroundHeightsColore),
			DeliveryCarriers:        cfg.Catalogs.DeliveryCarriers,
			DefaultCity:             cfg.Catalogs.DefaultCity,
		},

		AdminIDs:        cfg.Telegram.AdminIDs,
		ForwardToAdmins: cfg.Telegram.ForwardToAdmins,
	})

	b := bot.New(api, log, engine, managersStore, textsStore, cfg.Telegram.AdminIDs)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, ready)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if err := b.Run(ctx, cfg.Telegram.PollTimeoutSec); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

func intsToStrings(xs []int) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, strconv.Itoa(x))
	}
	return out
}
