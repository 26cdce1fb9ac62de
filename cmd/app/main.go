package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"entregas/cmd"
	adapterhttp "entregas/internal/adapters/in/http"
	"entregas/internal/adapters/out/postgres/costrepo"
	"entregas/internal/adapters/out/postgres/customerrepo"
	"entregas/internal/adapters/out/postgres/orderrepo"
	"entregas/internal/adapters/out/postgres/productrepo"
	"entregas/internal/adapters/out/postgres/registerrepo"
	"entregas/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateUpdateSettlementTotalsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

// getConfigs reads configuration from the environment. A .env file is
// loaded first when present, but the process environment alone is enough,
// which is how containerized deployments run.
func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:        os.Getenv("HTTP_PORT"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       os.Getenv("DB_SSLMODE"),
		PixKey:          os.Getenv("PIX_KEY"),
		PixMerchantName: os.Getenv("PIX_MERCHANT_NAME"),
		PixMerchantCity: os.Getenv("PIX_MERCHANT_CITY"),
	}
	return config
}

// mustConnectDB opens the database. TranslateError is required so unique
// violations surface as gorm.ErrDuplicatedKey and can be mapped to domain
// conflicts.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&registerrepo.RegisterDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.TransactionDTO{},
		&productrepo.ProductDTO{},
		&productrepo.MovementDTO{},
		&costrepo.CostDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	handlers := adapterhttp.Handlers{
		CreateOrder:               app.CreateCreateOrderCommandHandler(),
		AssignOrder:               app.CreateAssignOrderCommandHandler(),
		StartOrder:                app.CreateStartOrderCommandHandler(),
		CompleteOrder:             app.CreateCompleteOrderCommandHandler(),
		DeleteOrder:               app.CreateDeleteOrderCommandHandler(),
		AddTripCost:               app.CreateAddTripCostCommandHandler(),
		RemoveTripCost:            app.CreateRemoveTripCostCommandHandler(),
		AddPayment:                app.CreateAddPaymentCommandHandler(),
		ProcessReturn:             app.CreateProcessReturnCommandHandler(logger),
		UpdateReturnStatus:        app.CreateUpdateReturnStatusCommandHandler(logger),
		OpenRegister:              app.CreateOpenRegisterCommandHandler(),
		CloseRegister:             app.CreateCloseRegisterCommandHandler(),
		RegisterDeposit:           app.CreateRegisterDepositCommandHandler(),
		RegisterWithdrawal:        app.CreateRegisterWithdrawalCommandHandler(),
		UpdateSettlementTotals:    app.CreateUpdateSettlementTotalsCommandHandler(),
		CreateProduct:             app.CreateCreateProductCommandHandler(),
		AdjustStock:               app.CreateAdjustStockCommandHandler(),
		PurchaseWithNewCost:       app.CreatePurchaseWithNewCostCommandHandler(),
		DeleteProduct:             app.CreateDeleteProductCommandHandler(),
		CreateCustomer:            app.CreateCreateCustomerCommandHandler(),
		RecordCustomerTransaction: app.CreateRecordCustomerTransactionCommandHandler(),
		RecordCost:                app.CreateRecordCostCommandHandler(),

		GetOrder:           app.CreateGetOrderQueryHandler(),
		GetPendingOrders:   app.CreateGetPendingOrdersQueryHandler(),
		GetOrdersByDriver:  app.CreateGetOrdersByDriverQueryHandler(),
		GetDailySettlement: app.CreateGetDailySettlementQueryHandler(),
		GetProfitability:   app.CreateGetProfitabilityQueryHandler(),
		GetBestSellers:     app.CreateGetBestSellersQueryHandler(),
		GetDailyCosts:      app.CreateGetDailyCostsQueryHandler(),
	}

	server := adapterhttp.NewServer(handlers, adapterhttp.PixConfig{
		Key:          configs.PixKey,
		MerchantName: configs.PixMerchantName,
		MerchantCity: configs.PixMerchantCity,
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
