package main

import (
	"fmt"
	"os"

	"arkdumpster/cmd"
	httpin "arkdumpster/internal/adapters/in/http"
	"arkdumpster/internal/adapters/out/postgres/catalogrepo"
	"arkdumpster/internal/adapters/out/postgres/dumpsterrepo"
	"arkdumpster/internal/adapters/out/postgres/orderrepo"
	"arkdumpster/internal/adapters/out/postgres/quoterepo"
	"arkdumpster/internal/adapters/out/postgres/releasequeuerepo"
	"arkdumpster/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateRetryDumpsterReleasesCommandHandler(),
		app.Logger(),
	)
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
		MailerBaseURL: goDotEnvVariable("MAILER_BASE_URL"),
		MailerAPIKey:  goDotEnvVariable("MAILER_API_KEY"),
		MailerFrom:    goDotEnvVariable("MAILER_FROM"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&quoterepo.QuoteDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&dumpsterrepo.DumpsterDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ServiceDTO{},
		&releasequeuerepo.ReleaseTaskDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateQuoteCommandHandler(),
		app.CreateUpdateQuoteStatusCommandHandler(),
		app.CreatePromoteQuoteCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateMoveOrderCommandHandler(),
		app.CreateUpdateOrderDetailsCommandHandler(),
		app.CreateAdjustLineDescriptionCommandHandler(),
		app.CreateAssignDumpsterCommandHandler(),
		app.CreateReleaseDumpsterCommandHandler(),
		app.CreateSendOrderNotificationCommandHandler(),
		app.CreateRecordInvoiceEventCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetQuotesQueryHandler(),
		app.CreateGetDumpsterBoardQueryHandler(),
		app.CreateGetServiceCatalogQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
