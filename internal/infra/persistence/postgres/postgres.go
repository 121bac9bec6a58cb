package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"chorechart/config"
	"chorechart/internal/domain/constants"
	"chorechart/internal/domain/lifecycle"
	"chorechart/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	sqliteDSNOptions = "_foreign_keys=on&_busy_timeout=5000"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database (PostgreSQL, or SQLite for local development),
// registers ping, migration and pool-monitor hooks and returns the shared *gorm.DB.
func New(params Params) (*gorm.DB, error) {
	driver := constants.DatabaseDriverPostgres
	autoMigrate := false
	if params.Config.Database != nil {
		driver = params.Config.Database.Driver
		autoMigrate = params.Config.Database.AutoMigrate
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case constants.DatabaseDriverSQLite:
		db, err = OpenSQLite(sqliteDSN(params.Config.Database.SQLitePath))
	case constants.DatabaseDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required")
		}
		db, err = pgLib.New(params.Config.Postgres)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s client", driver)
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			if autoMigrate {
				if err := migrations.Up(sqlDB, driver); err != nil {
					return errors.Wrap(err, "failed to apply migrations")
				}
				params.Logger.Info("Database migrations applied", slog.String("driver", driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// OpenSQLite opens a SQLite database through the mattn/go-sqlite3 backed GORM driver.
// A single connection serializes writers, which stands in for PostgreSQL row locks.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func sqliteDSN(path string) string {
	switch path {
	case "":
		path = "chorechart.db"
	case ":memory:":
		return SQLiteMemoryDSN("chorechart")
	}

	return "file:" + path + "?" + sqliteDSNOptions
}

// SQLiteMemoryDSN names a shared in-memory SQLite database. Connections using the
// same name see the same data until the last one closes.
func SQLiteMemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared&" + sqliteDSNOptions
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "DB pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "DB pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
