package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"

	"catering/cmd"
	httpadapter "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/staffrepo"
	"catering/internal/adapters/out/rabbitmq"
	"catering/internal/core/ports"
	"catering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateSweepOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		GeoServiceURL: goDotEnvVariable("GEO_SERVICE_URL"),
		GeoHomeCity:   goDotEnvVariable("GEO_HOME_CITY"),
		AmqpURL:       goDotEnvVariable("AMQP_URL"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&staffrepo.StaffDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.AmqpURL == "" {
		return cmd.NewLogNotifier(logger)
	}

	conn, err := rabbitmq.Connect(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}

	return rabbitmq.NewNotifier(conn)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateReturnEquipmentCommandHandler(),
		app.CreateCreateStaffCommandHandler(),
		app.CreateGetKanbanBoardQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
