package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env          string `envconfig:"ENV"`
		LogLevel     string `envconfig:"LOG_LEVEL"`
		Port         string `envconfig:"PORT"`
		Host         string `envconfig:"HOST"`
		ReadTimeout  int    `envconfig:"READ_TIMEOUT_SECONDS"`
		WriteTimeout int    `envconfig:"WRITE_TIMEOUT_SECONDS"`
		Shutdown     struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Write          struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
		Mongo struct {
			URI            string `envconfig:"URI"`
			Username       string `envconfig:"USER"`
			Password       string `envconfig:"PASSWORD"`
			Database       string `envconfig:"DATABASE"`
			Collection     string `envconfig:"COLLECTION"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS"`
		} `envconfig:"MONGO"`
	} `envconfig:"DB"`

	Token struct {
		StoreDriver       string `envconfig:"STORE_DRIVER"`
		DefaultTTLSeconds int64  `envconfig:"DEFAULT_TTL_SECONDS"`
	} `envconfig:"TOKEN"`

	Sync struct {
		LockTTLSeconds   int  `envconfig:"LOCK_TTL_SECONDS"`
		LockWaitSeconds  int  `envconfig:"LOCK_WAIT_SECONDS"`
		FetchDetails     bool `envconfig:"FETCH_DETAILS" default:"true"`
		FetchSpa         bool `envconfig:"FETCH_SPA"`
		MessagingIsFatal bool `envconfig:"MESSAGING_IS_FATAL"`
	} `envconfig:"SYNC"`

	Akia struct {
		BaseURL          string   `envconfig:"BASE_URL"`
		AuthorizeURL     string   `envconfig:"AUTHORIZE_URL"`
		AppURL           string   `envconfig:"APP_URL"`
		ClientID         string   `envconfig:"CLIENT_ID"`
		ClientSecret     string   `envconfig:"CLIENT_SECRET"`
		RedirectURI      string   `envconfig:"REDIRECT_URI"`
		Scopes           []string `envconfig:"SCOPES"`
		PropertyID       int      `envconfig:"PROPERTY_ID"`
		StateSecret      string   `envconfig:"STATE_SECRET"`
		StateTTLMinutes  int      `envconfig:"STATE_TTL_MINUTES"`
		TimeoutSeconds   int      `envconfig:"TIMEOUT_SECONDS"`
		ConversationPath string   `envconfig:"CONVERSATION_PATH"`
	} `envconfig:"AKIA"`

	Agilysys struct {
		BookingAuthURL      string `envconfig:"BOOKING_AUTH_URL"`
		BookingURL          string `envconfig:"BOOKING_URL"`
		SpaAuthURL          string `envconfig:"SPA_AUTH_URL"`
		SpaURL              string `envconfig:"SPA_URL"`
		SubscriptionURL     string `envconfig:"SUBSCRIPTION_URL"`
		WebhookURL          string `envconfig:"WEBHOOK_URL"`
		AuthCacheTTLSeconds int    `envconfig:"AUTH_CACHE_TTL_SECONDS"`
		SalesRepID          string `envconfig:"SALES_REP_ID"`
		TimeoutSeconds      int    `envconfig:"TIMEOUT_SECONDS"`
		Credentials         struct {
			Client       string `envconfig:"CLIENT"`
			ClientSecret string `envconfig:"SECRET"`
			ProductID    string `envconfig:"PRODUCT_ID"`
			PropertyID   string `envconfig:"PROPERTY_ID"`
			TenantID     string `envconfig:"TENANT_ID"`
		} `envconfig:"CREDENTIALS"`
	} `envconfig:"AGILYSYS"`

	HubSpot struct {
		BaseURL                string `envconfig:"BASE_URL"`
		Token                  string `envconfig:"TOKEN"`
		Pipeline               string `envconfig:"PIPELINE"`
		InitialStage           string `envconfig:"INITIAL_STAGE"`
		CancelledStage         string `envconfig:"CANCELLED_STAGE"`
		PropConfirmationNumber string `envconfig:"PROP_CONFIRMATION_NUMBER"`
		PropAkiaURL            string `envconfig:"PROP_AKIA_URL"`
		SalesRepID             string `envconfig:"SALES_REP_ID"`
		TimeoutSeconds         int    `envconfig:"TIMEOUT_SECONDS"`
	} `envconfig:"HUBSPOT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			Region          string `envconfig:"REGION"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			Prefix          string `envconfig:"PREFIX"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.applyDefaults()

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// applyDefaults fills the vendor endpoints and CRM vocabulary the bridge was built against.
func (c *Config) applyDefaults() {
	setDefault(&c.Server.Port, "8080")
	setDefault(&c.App.Name, "pms-bridge")
	setDefault(&c.Token.StoreDriver, TokenStorePostgres)
	setDefault(&c.DB.Mongo.Collection, "tokens")

	setDefault(&c.Akia.BaseURL, "https://api.akia.com")
	setDefault(&c.Akia.AuthorizeURL, "https://sys.akia.com/oauth/authorize")
	setDefault(&c.Akia.AppURL, "https://app.akia.com")
	setDefault(&c.Akia.ConversationPath, "conversation")

	setDefault(&c.Agilysys.BookingAuthURL, "https://api.rguest.com/versa/auth/v1/authorize")
	setDefault(&c.Agilysys.BookingURL, "https://api.rguest.com/versa/booking/v1")
	setDefault(&c.Agilysys.SpaAuthURL, "https://api.rguest.com/spa/authservice/v1/authorize")
	setDefault(&c.Agilysys.SpaURL, "https://api.rguest.com/spaservices/appointments/source")
	setDefault(&c.Agilysys.SubscriptionURL, "https://api.rguest.com/platform/v1/subscriptions")

	setDefault(&c.HubSpot.BaseURL, "https://api.hubapi.com/crm/v3")
	setDefault(&c.HubSpot.Pipeline, "default")
	setDefault(&c.HubSpot.InitialStage, "appointmentscheduled")
	setDefault(&c.HubSpot.CancelledStage, "closedlost")
	setDefault(&c.HubSpot.PropConfirmationNumber, "confirmation_number")
	setDefault(&c.HubSpot.PropAkiaURL, "akia_url")

	if len(c.Akia.Scopes) == 0 {
		c.Akia.Scopes = []string{"customers:read", "customers:write", "properties:read", "properties:write"}
	}

	if c.Token.DefaultTTLSeconds == 0 {
		c.Token.DefaultTTLSeconds = 3600
	}

	if c.Akia.StateTTLMinutes == 0 {
		c.Akia.StateTTLMinutes = 10
	}

	if c.Sync.LockTTLSeconds == 0 {
		c.Sync.LockTTLSeconds = 60
	}
}

const (
	TokenStorePostgres = "postgres"
	TokenStoreMongo    = "mongo"
)

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
