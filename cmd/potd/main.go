package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/progclub/potd/internal/api/admin"
	"github.com/progclub/potd/internal/api/public"
	"github.com/progclub/potd/internal/config"
	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/judge"
	"github.com/progclub/potd/internal/pubsub"
	"github.com/progclub/potd/internal/ranking"
	"github.com/progclub/potd/internal/verify"

	"go.uber.org/zap"
)

var Version = "dev-build"

func main() {

	fmt.Fprintf(os.Stderr, "potd %s - daily practice problem tracker\n\n", Version)

	// config
	var configPath string
	flag.StringVar(&configPath, "c", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// logger
	var logger *zap.Logger
	if cfg.Logger.Level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// database
	db, err := database.Init(cfg.Storage.Database)
	if err != nil {
		zap.S().Fatalf("failed to initialize database: %v", err)
	}
	zap.S().Info("database initialized successfully")

	// ranking strategy
	strategy, err := ranking.FromName(cfg.Ranking.Strategy)
	if err != nil {
		zap.S().Fatalf("failed to select ranking strategy: %v", err)
	}
	zap.S().Infof("ranking strategy: %s", strategy.Name())

	// judge client
	judgeClient := judge.NewClient(cfg.Judge.BaseURL, time.Duration(cfg.Judge.TimeoutSeconds)*time.Second)

	// verification pipeline
	broker := pubsub.NewBroker()
	verifier := verify.NewService(db, judgeClient, strategy, func(ev verify.Event) {
		broker.PublishJSON(pubsub.TopicLeaderboard, ev)
	})

	// API routers
	publicEngine := public.NewRouter(cfg, db, verifier, strategy, broker)
	adminEngine := admin.NewRouter(cfg, db)

	// start servers
	go func() {
		zap.S().Infof("starting public server at %s", cfg.Listen)
		if err := publicEngine.Run(cfg.Listen); err != nil {
			zap.S().Fatalf("failed to start public server: %v", err)
		}
	}()

	if cfg.Admin.Enabled {
		go func() {
			zap.S().Infof("starting admin server at %s", cfg.Admin.Listen)
			if err := adminEngine.Run(cfg.Admin.Listen); err != nil {
				zap.S().Fatalf("failed to start admin server: %v", err)
			}
		}()
	}

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down server...")
}
