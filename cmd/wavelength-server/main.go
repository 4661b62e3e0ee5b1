package main

import (
	"errors"
	"os"

	"github.com/shenminzhang/wavelengthwalfie/internal/api"
	"github.com/shenminzhang/wavelengthwalfie/internal/config"
	"github.com/shenminzhang/wavelengthwalfie/internal/constants"
	"github.com/shenminzhang/wavelengthwalfie/internal/generator"
	"github.com/shenminzhang/wavelengthwalfie/internal/logging"
	"github.com/shenminzhang/wavelengthwalfie/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()
	checkEnvVars([]string{constants.EnvOpenAIAPIKey})

	// Configuration file is optional. Path may be provided via the
	// SPECTRUM_CONFIG env var or defaults to ./spectrum_config.json in
	// the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	explicit := configPath != ""
	if configPath == "" {
		configPath = "./spectrum_config.json"
	}
	cfg := loadConfigOrDefault(configPath, explicit)

	// Apply configured prompt templates so anchor and clue generation use
	// the configured texts.
	if cfg.AnchorsPromptTemplate != "" {
		generator.SetAnchorsPromptTemplate(cfg.AnchorsPromptTemplate)
	}
	if cfg.CluePromptTemplate != "" {
		generator.SetCluePromptTemplate(cfg.CluePromptTemplate)
	}

	// Allow the DB path to be configured via SPECTRUM_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/wavelength.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.RoundTTL)
	handler := api.NewRoundHandler(repo, generator.New())

	startExpiryScanner(repo, cfg.RoundTTL)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{constants.HeaderContentType},
	}))

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, api.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteRound, handler.CreateRound)
		apiRoutes.POST(constants.RouteReveal, handler.Reveal)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func loadConfigOrDefault(path string, explicit bool) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		// An explicitly requested config file must load; the implicit
		// default path may simply not exist.
		if explicit || !errors.Is(err, os.ErrNotExist) {
			logging.Fatal("Invalid wavelength configuration", err, logging.Fields{"config_path": path})
		}
		logging.Info("No config file found, using defaults", logging.Fields{"config_path": path})
		return config.Default()
	}
	return cfg
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
