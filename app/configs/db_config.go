package configs

import (
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Dialector builds the gorm dialector for the configured driver.
func Dialector(env ENV) (gorm.Dialector, error) {
	switch env.DBDriver {
	case DriverSQLite:
		return sqlite.Open(SQLiteDSN(env.DBPath)), nil
	case DriverMySQL:
		return mysql.Open(MySQLDSN(env)), nil
	case DriverPostgres:
		return postgres.Open(PostgresDSN(env)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

// SQLiteDSN enables foreign keys, which SQLite leaves off per connection.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

func MySQLDSN(env ENV) string {
	port := env.DBPort
	if port == "" {
		port = "3306"
	}
	cfg := mysqldriver.NewConfig()
	cfg.User = env.DBUser
	cfg.Passwd = env.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(env.DBHost, port)
	cfg.DBName = env.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func PostgresDSN(env ENV) string {
	port := env.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		env.DBHost, port, env.DBUser, env.DBPassword, env.DBName,
	)
}

// GormLogger routes gorm's query log through logrus.
func GormLogger(log logrus.FieldLogger, env ENV) gormlogger.Interface {
	level := gormlogger.Warn
	if !env.IsProduction() && env.LogLevel == "debug" {
		level = gormlogger.Info
	}
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func OpenConnection(env ENV, log logrus.FieldLogger) (*gorm.DB, error) {
	dialector, err := Dialector(env)
	if err != nil {
		return nil, err
	}

	maxRetries := env.DBMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	log = log.WithField("driver", env.DBDriver)

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		log.Infof("connecting to database (attempt %d/%d)", i+1, maxRetries)

		db, err := gorm.Open(dialector, &gorm.Config{Logger: GormLogger(log, env)})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Info("database connection established")
					return db, nil
				}
			}
			lastErr = pingErr
			log.WithError(pingErr).Warnf("failed to ping database, retrying in %s", env.DBRetryDelay)
		} else {
			lastErr = err
			log.WithError(err).Warnf("failed to open gorm connection, retrying in %s", env.DBRetryDelay)
		}

		if i < maxRetries-1 {
			time.Sleep(env.DBRetryDelay)
		}
	}

	return nil, fmt.Errorf("connecting to %s database after %d attempts: %w", env.DBDriver, maxRetries, lastErr)
}
