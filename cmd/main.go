package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"controlling_lights/internal/handlers"
	"controlling_lights/internal/logger"
	"controlling_lights/internal/repository"
	"controlling_lights/internal/repository/db"
	"controlling_lights/internal/server"
	"controlling_lights/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml + env overrides
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger with the configured level
	log := logger.Get(viper.GetString("log.level"))

	// open DB for the audit log
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	authCfg, err := buildAuthConfig()
	if err != nil {
		log.Fatalw("invalid auth config", "err", err)
	}
	services := service.NewService(repos, authCfg, log)
	apiHandler := handlers.NewHandler(services, log, handlers.RateLimit{
		RPS:   viper.GetFloat64("rate_limit.rps"),
		Burst: viper.GetInt("rate_limit.burst"),
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	// secrets come from the environment, not the yml
	_ = viper.BindEnv("auth.username", "LIGHTS_USERNAME")
	_ = viper.BindEnv("auth.password", "LIGHTS_PASSWORD")
	_ = viper.BindEnv("auth.signing_key", "LIGHTS_SIGNING_KEY")
	return viper.ReadInConfig()
}

// buildAuthConfig hashes the configured shared password once at startup.
func buildAuthConfig() (service.AuthConfig, error) {
	hash, err := service.HashPassword(viper.GetString("auth.password"))
	if err != nil {
		return service.AuthConfig{}, err
	}
	return service.AuthConfig{
		Username:     viper.GetString("auth.username"),
		PasswordHash: hash,
		SigningKey:   viper.GetString("auth.signing_key"),
		TokenTTL:     viper.GetDuration("auth.token_ttl"),
	}, nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
// Pending scheduled-action timers are dropped here: they are not persisted
// and have no cancellation surface.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
