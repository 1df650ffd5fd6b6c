package main

import (
	"context"
	"fmt"

	"ledgerly-api/config"
	"ledgerly-api/config/minio"
	"ledgerly-api/config/postgre"
	"ledgerly-api/internal/httpserver"
	"ledgerly-api/pkg/authgate"
	"ledgerly-api/pkg/log"
	"ledgerly-api/pkg/token"
)

// @Name Ledgerly API
// @description This is the API documentation for Ledgerly.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize MinIO
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer minio.Disconnect(ctx)
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// Initialize session token codec and auth gate
	codec, err := token.NewCodec(cfg.JWT.SecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize token codec: ", err)
		return
	}

	gate, err := authgate.New(authgate.Config{
		Codec:      codec,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
		Cookie: authgate.CookieConfig{
			Domain: cfg.Cookie.Domain,
			Path:   cfg.Cookie.Path,
			Secure: cfg.Cookie.Secure,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize auth gate: ", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		DB:    postgresDB,
		MinIO: minioClient,
		Gate:  gate,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
