package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultCompanyPrefix is the organization's short name as it appears at the
// head of outgoing document codes. Override with COMPANY_PREFIX.
const DefaultCompanyPrefix = "中興"

type Config struct {
	// DBType is "sqlite" or "postgres".
	DBType string
	// DBDSN is the sqlite file path or the postgres DSN.
	DBDSN string
	// RedisAddr is the cache address; empty disables invalidation signaling.
	RedisAddr string
	// CompanyPrefix feeds the link classifier.
	CompanyPrefix string
	// AuditSchedule is the cron spec for the link audit job.
	AuditSchedule string
}

func LoadConfig() *Config {
	cnf := &Config{
		DBType:        getEnv("DB_TYPE", "sqlite"),
		DBDSN:         getEnv("DB_DSN", ".tmp/dispatch.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CompanyPrefix: getEnv("COMPANY_PREFIX", DefaultCompanyPrefix),
		AuditSchedule: getEnv("AUDIT_SCHEDULE", "@every 10m"),
	}

	return cnf
}

func GetDb(cnf *Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cnf.DBType {
	case "postgres":
		dialector = postgres.Open(cnf.DBDSN)
	default:
		dialector = sqlite.Open(cnf.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
