package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/config"
	"github.com/gi-os/ShopTemplateSystem/internal/app"
	"github.com/gi-os/ShopTemplateSystem/internal/shopapi"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

func main() {
	configFile := flag.String("c", "shopd.yml", "config file path")
	templateDir := flag.String("templates", "assets/templates", "mustache template directory")
	flag.Parse()

	// .env is a development convenience; production sets variables directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig(*configFile)

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		zap.S().Fatalf("initializing application: %v", err)
	}
	defer application.Shutdown()

	webserver.Init(application, *templateDir)
	shopapi.Init(application)

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.S().Fatalf("web server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown: %v", err)
	}
}
