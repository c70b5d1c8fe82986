package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

const sqliteScheme = "sqlite://"

type Options struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	// Silent turns gorm's own query logging off.
	Silent bool
}

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// Open connects to the store named by opts.URL. postgres:// and postgresql://
// URLs go to Postgres; sqlite://<dsn> goes to SQLite with foreign keys on.
func Open(logg *logger.Logger, opts Options) (*Service, error) {
	serviceLog := logg.With("service", "DBService")

	dialector, err := dialectorFor(serviceLog, opts.URL)
	if err != nil {
		return nil, err
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	if opts.Silent {
		gormLog = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(log *logger.Logger, rawURL string) (gorm.Dialector, error) {
	rawURL = strings.TrimSpace(rawURL)
	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		cfg, err := pgx.ParseConfig(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid postgres url: %w", err)
		}
		log.Info("Using postgres", "host", cfg.Host, "port", cfg.Port, "database", cfg.Database, "user", cfg.User)
		return postgres.Open(rawURL), nil
	case strings.HasPrefix(rawURL, sqliteScheme):
		dsn := SQLiteDSN(strings.TrimPrefix(rawURL, sqliteScheme))
		log.Info("Using sqlite", "dsn_path", strings.SplitN(dsn, "?", 2)[0])
		return sqlite.Open(dsn), nil
	case rawURL == "":
		return nil, fmt.Errorf("missing database url")
	default:
		return nil, fmt.Errorf("unsupported database url scheme: %q", schemeOf(rawURL))
	}
}

// SQLiteDSN makes sure foreign key enforcement is on for the connection.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func schemeOf(rawURL string) string {
	if i := strings.Index(rawURL, "://"); i > 0 {
		return rawURL[:i]
	}
	return rawURL
}
