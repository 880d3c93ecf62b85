package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	appcfg "github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
	apphttp "github.com/Amanpatel30/Fresh-Connect-sub000/internal/http"
	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/verification"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := appcfg.Load()

	// Audit DB is optional; without DB_DSN the trail is simply off.
	var db *gorm.DB
	if cfg.DBDSN != "" {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&verification.VerificationEvent{}); err != nil {
			log.Fatalf("failed to migrate verification_events: %v", err)
		}
	} else {
		logger.Warn("DB_DSN not set, verification audit trail disabled")
	}

	r := apphttp.NewRouter(cfg, logger, db)
	logger.Info("admin console api listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
