package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}

	var gormDB *gorm.DB
	if configs.StorageBackend == cmd.BackendPostgres {
		gormDB = openPostgres(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		StorageBackend: goDotEnvVariable("STORAGE_BACKEND"),
		DataDir:        goDotEnvVariable("DATA_DIR"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
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

func openPostgres(configs cmd.Config) *gorm.DB {
	sqlDB, err := sql.Open("postgres", configs.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %s", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("failed to reach database: %s", err)
	}

	gormDB, err := postgres.Open(sqlDB)
	if err != nil {
		log.Fatalf("failed to initialise gorm: %s", err)
	}
	if err := postgres.CreateSchema(gormDB); err != nil {
		log.Fatalf("failed to create schema: %s", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCustomerService(),
		app.CreateSellerService(),
		app.CreateEmployeeService(),
		app.CreateDeliveryPersonService(),
		app.CreateUserService(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
