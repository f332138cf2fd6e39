package configs

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds every value read from the environment at process start.
type Config struct {
	Env         string `mapstructure:"NODE_ENV" validate:"oneof=development production test"`
	Port        int    `mapstructure:"PORT" validate:"gt=0,lte=65535"`
	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required"`
	JWTSecret   string `mapstructure:"JWT_SECRET" validate:"required"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT" validate:"gte=0,lte=65535"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	MaishaPayAPIKey     string `mapstructure:"MAISHA_PAY_API_KEY"`
	MaishaPayMerchantID string `mapstructure:"MAISHA_PAY_MERCHANT_ID"`
	MaishaPayAPIURL     string `mapstructure:"MAISHA_PAY_API_URL" validate:"required,url"`
	MidtransServerKey   string `mapstructure:"MIDTRANS_SERVER_KEY"`
	MidtransUseProd     bool   `mapstructure:"MIDTRANS_USE_PROD"`

	FrontendURL string `mapstructure:"FRONTEND_URL" validate:"required,url"`
	BackendURL  string `mapstructure:"BACKEND_URL" validate:"required,url"`

	UploadDir        string `mapstructure:"UPLOAD_DIR" validate:"required"`
	S3Bucket         string `mapstructure:"S3_BUCKET"`
	AWSRegion        string `mapstructure:"AWS_REGION"`
	CorsAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
}

var envKeys = []string{
	"NODE_ENV", "PORT", "DATABASE_URL", "JWT_SECRET",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	"STRIPE_SECRET_KEY", "MAISHA_PAY_API_KEY", "MAISHA_PAY_MERCHANT_ID", "MAISHA_PAY_API_URL",
	"MIDTRANS_SERVER_KEY", "MIDTRANS_USE_PROD",
	"FRONTEND_URL", "BACKEND_URL",
	"UPLOAD_DIR", "S3_BUCKET", "AWS_REGION", "CORS_ALLOW_ORIGINS",
}

// =======================
// ENV LOADER
// =======================

// Load reads the optional .env files (default ".env"), binds the process
// environment and validates it. A missing required key is an error.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		// .env is optional; variables already exported win.
		_ = godotenv.Load(envFiles...)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("NODE_ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", `"ASAFS" <noreply@asafs.org>`)
	v.SetDefault("STRIPE_SECRET_KEY", "sk_test_placeholder")
	v.SetDefault("MAISHA_PAY_API_URL", "https://maishapay.com/api/payment")
	v.SetDefault("MIDTRANS_USE_PROD", false)
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("BACKEND_URL", "http://localhost:5000")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("NODE_ENV", "NODE_ENV", "APP_ENV")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment variables: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.FrontendURL = strings.TrimRight(strings.TrimSpace(cfg.FrontendURL), "/")
	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid environment variables: %w", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fe.Field()+" is required")
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid environment variables: %s", strings.Join(problems, "; "))
}

func (c Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

// SMTPEnabled mirrors the mail transport guard: host, user and password must all be set.
func (c Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c Config) MidtransEnabled() bool { return strings.TrimSpace(c.MidtransServerKey) != "" }

func (c Config) S3Enabled() bool { return strings.TrimSpace(c.S3Bucket) != "" }

// MaishaPayCallbackURL is the aggregator callback endpoint on this service.
func (c Config) MaishaPayCallbackURL() string {
	return c.BackendURL + "/api/payments/callback/maishapay"
}
