package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	webhookhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/moltin"
	"fulfillment/internal/adapters/out/ses"
	"fulfillment/internal/adapters/out/shipengine"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

const upstreamTimeout = 30 * time.Second

type CompositionRoot struct {
	configs Config

	orderProvider    ports.OrderProvider
	shipmentProvider ports.ShipmentProvider
	notifier         ports.NotificationSender
}

func NewCompositionRoot(ctx context.Context, configs Config) (CompositionRoot, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(configs.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			configs.AWSAccessKeyID, configs.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load aws config: %w", err)
	}

	return CompositionRoot{
		configs: configs,
		orderProvider: moltin.NewClient(
			configs.MoltinAPIURL,
			configs.MoltinClientID,
			configs.MoltinClientSecret,
			upstreamTimeout,
		),
		shipmentProvider: shipengine.NewClient(
			configs.ShipEngineAPIURL,
			configs.ShipEngineAPIKey,
			upstreamTimeout,
		),
		notifier: ses.NewSender(sesv2.NewFromConfig(awsCfg), upstreamTimeout),
	}, nil
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() (commands.FulfillOrderCommandHandler, error) {
	parcel, err := c.parcel()
	if err != nil {
		return commands.FulfillOrderCommandHandler{}, err
	}

	return commands.NewFulfillOrderCommandHandler(
		c.orderProvider,
		c.shipmentProvider,
		c.notifier,
		c.shipFrom(),
		[]shipment.Parcel{parcel},
		c.configs.EmailFrom,
	), nil
}

func (c *CompositionRoot) CreateWebhookServer() (*webhookhttp.Server, error) {
	handler, err := c.CreateFulfillOrderCommandHandler()
	if err != nil {
		return nil, err
	}
	return webhookhttp.NewServer(c.configs.WebhookSecret, handler), nil
}

func (c *CompositionRoot) shipFrom() order.ShippingAddress {
	return order.ShippingAddress{
		FirstName:   c.configs.ShipFromFirstName,
		LastName:    c.configs.ShipFromLastName,
		CompanyName: c.configs.ShipFromCompany,
		Line1:       c.configs.ShipFromLine1,
		City:        c.configs.ShipFromCity,
		County:      c.configs.ShipFromCounty,
		Postcode:    c.configs.ShipFromPostcode,
		Country:     c.configs.ShipFromCountry,
		PhoneNumber: c.configs.ShipFromPhone,
	}
}

func (c *CompositionRoot) parcel() (shipment.Parcel, error) {
	length, err := parseDimension("PARCEL_LENGTH", c.configs.ParcelLength)
	if err != nil {
		return shipment.Parcel{}, err
	}
	width, err := parseDimension("PARCEL_WIDTH", c.configs.ParcelWidth)
	if err != nil {
		return shipment.Parcel{}, err
	}
	height, err := parseDimension("PARCEL_HEIGHT", c.configs.ParcelHeight)
	if err != nil {
		return shipment.Parcel{}, err
	}
	weight, err := parseDimension("PARCEL_WEIGHT", c.configs.ParcelWeight)
	if err != nil {
		return shipment.Parcel{}, err
	}

	return shipment.Parcel{
		Length:         length,
		Width:          width,
		Height:         height,
		DimensionsUnit: c.configs.ParcelDimensionsUnit,
		Weight:         weight,
		WeightUnit:     c.configs.ParcelWeightUnit,
	}, nil
}

func parseDimension(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, value, err)
	}
	return parsed, nil
}
