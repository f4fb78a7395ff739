package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"pmsbridge/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 5
	postgresMaxOpenConnection = 5
)

type Connection struct {
	Write *sqlx.DB
}

// New opens the token database. It returns a connection without a handle when another token store driver is selected.
func New(cfg *config.Config) *Connection {
	if cfg.Token.StoreDriver != "" && cfg.Token.StoreDriver != config.TokenStorePostgres {
		log.Info().Str("driver", cfg.Token.StoreDriver).Msg("Postgres token store disabled")

		return &Connection{}
	}

	return &Connection{
		Write: CreatePostgresWriteConn(*cfg),
	}
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func Descriptor(config config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	maxRetry := config.DB.Postgres.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 1
	}

	return CreatePostgresConnection(
		"write",
		Descriptor(config),
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		maxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor, host, port string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msg("Could not connect to database")

	return nil
}
