package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"sportshub/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName  = "postgres"
	pingTimeout = 5 * time.Second
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// endpoint is one side of the read/write pair as configured.
type endpoint struct {
	name     string
	host     string
	port     string
	username string
	password string
	database string
	sslMode  string
	timezone string
}

func (e endpoint) dsn() string {
	dsn := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(e.username, e.password),
		Host:   net.JoinHostPort(e.host, e.port),
		Path:   e.database,
	}

	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	// DATE and TIME columns are read back in the session zone.
	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// New opens the read and write pools. Both point at the same database unless a replica is configured.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{
		name:     "write",
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		username: pg.Write.Username,
		password: pg.Write.Password,
		database: databaseName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}

	read := endpoint{
		name:     "read",
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		username: pg.Read.Username,
		password: pg.Read.Password,
		database: databaseName(cfg, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}

	return &Connection{
		Read:  connectWithRetry(cfg, read),
		Write: connectWithRetry(cfg, write),
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

func databaseName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

func connectWithRetry(cfg *config.Config, target endpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= max(pg.MaxRetry, 1); attempt++ {
		db, err := connect(target)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMinutes) * time.Minute)

			log.Info().
				Str("name", target.name).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.database).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("dbName", target.database).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	log.Fatal().Str("name", target.name).Str("host", target.host).Msg("Giving up connecting to database")

	return nil
}

func connect(target endpoint) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, target.dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s pool: %w", target.name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping %s pool: %w", target.name, err)
	}

	return db, nil
}
