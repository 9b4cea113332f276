package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Tpay     Tpay
	S3       S3
	Seller   Seller
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	PublicBaseURL string `env:"HTTP_PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	JWTSecret     string `env:"HTTP_JWT_SECRET" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers          []string `env:"KAFKA_BROKERS"`
	PaymentPaidTopic string   `env:"KAFKA_PAYMENT_PAID_TOPIC" envDefault:"payments.paid"`
}

// Tpay holds the payment gateway credentials. MerchantID and SecurityCode
// are optional at parse time: the webhook route must keep answering the
// gateway with HTTP 200 even when they are missing, so routes check the
// gateway configuration per request instead of failing the whole service.
type Tpay struct {
	MerchantID   string   `env:"TPAY_MERCHANT_ID" envDefault:""`
	SecurityCode string   `env:"TPAY_SECURITY_CODE" envDefault:""`
	Environment  string   `env:"TPAY_ENVIRONMENT" envDefault:"secure"` // secure | sandbox
	CallbackIPWL []string `env:"TPAY_CALLBACK_IP_WL" envDefault:""`
}

type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket    string `env:"S3_BUCKET"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
}

// Seller is the invoice seller snapshot source: the school's own billing
// details, copied onto every invoice at creation time.
type Seller struct {
	Name    string `env:"SELLER_NAME"`
	Address string `env:"SELLER_ADDRESS"`
	TaxID   string `env:"SELLER_TAX_ID"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
