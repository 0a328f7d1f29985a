package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"eta/cmd"
	"eta/internal/adapters/in/http/openapi"
	"eta/internal/adapters/out/postgres"
	"eta/internal/adapters/out/slaconfig"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	location, err := time.LoadLocation(configs.DefaultTimezone)
	if err != nil {
		log.Fatalf("Invalid DEFAULT_TIMEZONE %q: %v", configs.DefaultTimezone, err)
	}

	gormDB := mustOpenDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	slaRules := mustLoadSlaRules(ctx, configs.SlaRulesPath, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, slaRules, location, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment")
	}

	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:            goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:            goDotEnvVariable("DB_PORT", "5432"),
		DBUser:            goDotEnvVariable("DB_USER", "postgres"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD", ""),
		DBName:            goDotEnvVariable("DB_NAME", "eta"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE", "disable"),
		SlaRulesPath:      goDotEnvVariable("SLA_RULES_PATH", "configs/sla_rules.yaml"),
		SlaReloadSchedule: goDotEnvVariable("SLA_RELOAD_SCHEDULE", ""),
		DefaultTimezone:   goDotEnvVariable("DEFAULT_TIMEZONE", "UTC"),
		LogLevel:          goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

// mustLoadSlaRules reads the rule file once at startup; later edits are
// picked up by the reload job.
func mustLoadSlaRules(ctx context.Context, path string, logger *slog.Logger) *slaconfig.Provider {
	loader := slaconfig.NewLoader(path)
	rules, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading SLA rules from %s: %v", path, err)
	}
	logger.InfoContext(ctx, "SLA rules loaded", "path", path, "rules", rules.Len())
	return slaconfig.NewProvider(loader, rules)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	contract, err := openapi.NewValidator(ctx)
	if err != nil {
		log.Fatalf("Error loading api document: %v", err)
	}
	server, err := app.CreateHTTPServer(contract)
	if err != nil {
		log.Fatalf("Error creating http server: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	if err := server.Register(e); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
