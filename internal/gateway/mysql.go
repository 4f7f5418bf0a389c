package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trip-reconciliation/internal/domain"
)

// OpenMySQL connects to the schema at dsn. SQL errors and slow queries go to log.
func OpenMySQL(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// CloseMySQL releases the connection pool behind db.
func CloseMySQL(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newGormLogger(log zerolog.Logger) logger.Interface {
	l := log.With().Str("component", "gorm").Logger()
	return logger.New(&l, logger.Config{
		Colorful:                  false,
		LogLevel:                  logger.Error,
		SlowThreshold:             time.Second,
		IgnoreRecordNotFoundError: true,
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with s's own
// wildcards escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// monthBounds returns the filter month as half-open wall-clock bounds in the
// DATETIME text form, so the driver does not shift them by a time zone.
func monthBounds(f domain.ReportFilter) (start, end string, err error) {
	from, to, err := f.MonthRange()
	if err != nil {
		return "", "", err
	}
	return from.Format(time.DateTime), to.Format(time.DateTime), nil
}
