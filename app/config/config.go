package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	AppName   string
}

var AppConfig *Config

// Load reads the environment (including a .env file when present) into
// AppConfig. The database handle is attached separately by InitDB.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	AppConfig = &Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		AppName:   envOr("APP_NAME", "ePesantren"),
	}
}

func InitDB() {
	dsn := buildDSN(os.Getenv)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

// buildDSN builds a lib/pq connection string. DATABASE_URL wins when set;
// otherwise discrete PG* variables with local defaults are used.
func buildDSN(getenv func(string) string) string {
	if url := getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := valueOr(getenv("PGHOST"), "localhost")
	port := valueOr(getenv("PGPORT"), "5432")
	user := valueOr(getenv("PGUSER"), "postgres")
	dbname := valueOr(getenv("PGDATABASE"), "epesantren")
	sslmode := valueOr(getenv("PGSSLMODE"), "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if password := getenv("PGPASSWORD"); password != "" {
		dsn += " password=" + password
	}
	return dsn
}

func envOr(key, fallback string) string {
	return valueOr(os.Getenv(key), fallback)
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetJWTSecret() string {
	return AppConfig.JWTSecret
}

func GetAppName() string {
	return AppConfig.AppName
}
