package main

import (
	"fmt"
	"os"
	"strconv"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.MigrateDB(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		SplitTransactional:      goDotEnvBool("SPLIT_TRANSACTIONAL", true),
		SettlementTransactional: goDotEnvBool("SETTLEMENT_TRANSACTIONAL", true),
		TrackingStrictMode:      goDotEnvBool("TRACKING_STRICT_MODE", false),
		TrackingSyncSchedule:    goDotEnvVariable("TRACKING_SYNC_SCHEDULE"),
	}
	if config.TrackingSyncSchedule == "" {
		config.TrackingSyncSchedule = "0 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateSplitOrderCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateRecordTrackingEventCommandHandler(),
		app.CreateCreateSettlementCommandHandler(),
		app.CreateMarkSettlementPaidCommandHandler(),
		app.CreateCalculateShippingQueryHandler(),
		app.CreateGetCourierPaymentStatsQueryHandler(),
		app.CreateGetTrackingHistoryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
