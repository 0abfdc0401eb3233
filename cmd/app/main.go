package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"fulfillment/cmd"
	webhookhttp "fulfillment/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(context.Background(), configs)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		WebhookSecret: goDotEnvVariable("WEBHOOK_SECRET"),

		MoltinAPIURL:       goDotEnvVariable("MOLTIN_API_URL"),
		MoltinClientID:     goDotEnvVariable("MOLTIN_CLIENT_ID"),
		MoltinClientSecret: goDotEnvVariable("MOLTIN_CLIENT_SECRET"),

		ShipEngineAPIURL: goDotEnvVariable("SHIPENGINE_API_URL"),
		ShipEngineAPIKey: goDotEnvVariable("SHIPENGINE_API_KEY"),

		AWSRegion:          goDotEnvVariable("AWS_REGION"),
		AWSAccessKeyID:     goDotEnvVariable("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: goDotEnvVariable("AWS_SECRET_ACCESS_KEY"),
		EmailFrom:          goDotEnvVariable("EMAIL_FROM"),

		ShipFromFirstName: goDotEnvVariable("SHIP_FROM_FIRST_NAME"),
		ShipFromLastName:  goDotEnvVariable("SHIP_FROM_LAST_NAME"),
		ShipFromCompany:   goDotEnvVariable("SHIP_FROM_COMPANY"),
		ShipFromLine1:     goDotEnvVariable("SHIP_FROM_LINE1"),
		ShipFromCity:      goDotEnvVariable("SHIP_FROM_CITY"),
		ShipFromCounty:    goDotEnvVariable("SHIP_FROM_COUNTY"),
		ShipFromPostcode:  goDotEnvVariable("SHIP_FROM_POSTCODE"),
		ShipFromCountry:   goDotEnvVariable("SHIP_FROM_COUNTRY"),
		ShipFromPhone:     goDotEnvVariable("SHIP_FROM_PHONE"),

		ParcelLength:         goDotEnvVariable("PARCEL_LENGTH"),
		ParcelWidth:          goDotEnvVariable("PARCEL_WIDTH"),
		ParcelHeight:         goDotEnvVariable("PARCEL_HEIGHT"),
		ParcelDimensionsUnit: goDotEnvVariable("PARCEL_DIMENSIONS_UNIT"),
		ParcelWeight:         goDotEnvVariable("PARCEL_WEIGHT"),
		ParcelWeightUnit:     goDotEnvVariable("PARCEL_WEIGHT_UNIT"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateWebhookServer()
	if err != nil {
		log.Fatalf("webhook server: %v", err)
	}

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, webhookhttp.SecretHeader},
		ExposeHeaders: []string{webhookhttp.SecretHeader},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.POST("/", server.HandleWebhook)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
