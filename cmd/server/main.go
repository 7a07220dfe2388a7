package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pandoro-backend/internal/api/routes"
	"pandoro-backend/internal/config"
	"pandoro-backend/internal/database"
	"pandoro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "pandoro-backend/docs" // swagger spec
)

const shutdownTimeout = 10 * time.Second

//	@title			Pandoro Backend API
//	@version		1.0
//	@description	This is the backend API for Pandoro, providing endpoints for managing projects, their updates and change notes, groups, personal notes and changelogs.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	UserAuth
//	@in							header
//	@name						token
//	@description				Token returned by signUp or signIn, sent together with the "id" header.

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, reading the environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.WithError(err).Fatal("initialize database")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("set up routes")
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("port", port).Info("pandoro backend listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("serve")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
