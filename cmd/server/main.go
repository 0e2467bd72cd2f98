package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kchowhan/propvestor-sub002/internal/config"
	"github.com/kchowhan/propvestor-sub002/internal/logging"
	"github.com/kchowhan/propvestor-sub002/internal/repository"
	"github.com/kchowhan/propvestor-sub002/internal/routes"
)

func main() {
	// Load .env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	if envErr != nil {
		log.Debug("No .env file found, relying on system env")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, log, cfg.Import.DefaultSource)

	log.WithField("addr", cfg.Server.Addr).Info("listening")
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
