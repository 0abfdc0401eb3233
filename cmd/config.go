package cmd

type Config struct {
	HTTPPort      string
	WebhookSecret string

	MoltinAPIURL       string
	MoltinClientID     string
	MoltinClientSecret string

	ShipEngineAPIURL string
	ShipEngineAPIKey string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	EmailFrom          string

	ShipFromFirstName string
	ShipFromLastName  string
	ShipFromCompany   string
	ShipFromLine1     string
	ShipFromCity      string
	ShipFromCounty    string
	ShipFromPostcode  string
	ShipFromCountry   string
	ShipFromPhone     string

	ParcelLength         string
	ParcelWidth          string
	ParcelHeight         string
	ParcelDimensionsUnit string
	ParcelWeight         string
	ParcelWeightUnit     string
}
