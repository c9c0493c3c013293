package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"exportpro/cmd"
	httpin "exportpro/internal/adapters/in/http"
	"exportpro/internal/adapters/out/postgres/intelrepo"
	"exportpro/internal/adapters/out/postgres/orderrepo"
	"exportpro/internal/adapters/out/postgres/productrepo"
	"exportpro/internal/adapters/out/postgres/supplierrepo"
	"exportpro/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateSweepDocumentationCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaStorefrontTopic: goDotEnvVariable("KAFKA_STOREFRONT_TOPIC"),
		DocumentsDir:         goDotEnvVariable("DOCUMENTS_DIR"),
		OrderNumberPolicy:    goDotEnvVariable("ORDER_NUMBER_POLICY"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderStatusDTO{},
		&supplierrepo.SupplierDTO{},
		&productrepo.ProductDTO{},
		&intelrepo.IntelDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = httpin.NewRequestValidator()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateGenerateOrderDocumentsCommandHandler(),
		app.CreateCreateSupplierCommandHandler(),
		app.CreateUpdateSupplierCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetSuppliersQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateAnalyzeOrderProfitQueryHandler(),
		app.CreateGetMarketIntelligenceQueryHandler(),
		app.CreateGetPricePredictionQueryHandler(),
		app.CreateGetArbitrageQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
