package main

import (
	"fmt"
	"net/http"
	"os"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/menugrouprepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateHideOverpricedMenusCommandHandler(), app.Logger())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		ProfanityServiceURL: goDotEnvVariable("PROFANITY_SERVICE_URL"),
		DeliveryServiceURL:  goDotEnvVariable("DELIVERY_SERVICE_URL"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&tablerepo.TableDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateProductCommandHandler(),
		app.CreateChangeProductPriceCommandHandler(),
		app.CreateCreateMenuGroupCommandHandler(),
		app.CreateCreateMenuCommandHandler(),
		app.CreateChangeMenuPriceCommandHandler(),
		app.CreateDisplayMenuCommandHandler(),
		app.CreateHideMenuCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateServeOrderCommandHandler(),
		app.CreateStartOrderDeliveryCommandHandler(),
		app.CreateCompleteOrderDeliveryCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateCreateTableCommandHandler(),
		app.CreateSitTableCommandHandler(),
		app.CreateClearTableCommandHandler(),
		app.CreateChangeNumberOfGuestsCommandHandler(),
		app.CreateGetAllMenuGroupsQueryHandler(),
		app.CreateGetAllMenusQueryHandler(),
		app.CreateGetIncompleteOrdersQueryHandler(),
		app.CreateGetAllTablesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
