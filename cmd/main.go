package main

import (
	"log"

	"github.com/Guillo-bit/NutrIA/config"
	"github.com/Guillo-bit/NutrIA/controllers"
	"github.com/Guillo-bit/NutrIA/routes"
	"github.com/Guillo-bit/NutrIA/services"
	"github.com/Guillo-bit/NutrIA/utils"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	gemini := services.NewGeminiService(cfg, logger)
	usda := services.NewUSDAService(cfg, logger)
	analysis := services.NewAnalysisService(gemini, usda)

	ctl := controllers.NewAnalysisController(analysis, logger)
	r := routes.SetupRouter(ctl)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
