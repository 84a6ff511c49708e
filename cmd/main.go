package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	authconfig "summary-generator/internal/auth/config"
	"summary-generator/internal/di"
	"summary-generator/internal/server"
	"summary-generator/internal/shared/logger"
	summarizerconfig "summary-generator/internal/summarizer/config"
)

func main() {
	// Load environment variables; missing files are fine
	envFiles := server.LoadEnvFiles(server.DefaultEnvFiles...)

	appLogger := logger.NewFromEnv().WithComponent("main")
	appLogger.Info("Summary Generator - starting application")
	appLogger.Debugf("Env files loaded: %v", envFiles)

	serverCfg, err := server.LoadConfig()
	if err != nil {
		appLogger.Fatalf("Failed to load server configuration: %v", err)
	}

	authConfig, err := authconfig.LoadConfig()
	if err != nil {
		appLogger.Fatalf("Failed to load auth configuration: %v", err)
	}
	if authConfig.InsecureSecretKey {
		appLogger.Warn("SECRET_KEY not set, signing tokens with the insecure development default")
	}

	summarizerConfig, err := summarizerconfig.LoadConfig()
	if err != nil {
		appLogger.Fatalf("Failed to load summarizer configuration: %v", err)
	}

	// Initialize Dependency Injection Container
	container := di.NewContainer(appLogger)
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The generator client comes first: without GROQ_API_KEY the process must not serve
	if err := container.InitializeSummarizer(summarizerConfig, nil); err != nil {
		appLogger.Fatalf("Failed to initialize Summarizer module: %v", err)
	}
	appLogger.Info("Summarizer module initialized successfully")

	if err := container.InitializeAuth(initCtx, authConfig); err != nil {
		appLogger.Fatalf("Failed to initialize Auth module: %v", err)
	}
	appLogger.Infof("Auth module initialized successfully (database %s)", authConfig.Database.Path)

	app, err := server.NewApp(container, serverCfg)
	if err != nil {
		appLogger.Fatalf("Failed to build HTTP application: %v", err)
	}

	serverAddr := serverCfg.Addr()
	appLogger.Infof("All modules initialized. Starting HTTP server on %s", serverAddr)

	// Start server in a goroutine for graceful shutdown
	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Errorf("Server startup failed: %v", err)
			return
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}

	appLogger.Info("Application stopped gracefully")
}
