package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const minJWTSecretLength = 32

type DB struct {
	URL        string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
	MaxConns   int
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	PublicURL  string
}

// Enabled reports whether avatar storage was configured at all.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type Config struct {
	Env                     string
	Host                    string
	ServerPort              int
	CORSOrigin              string
	DB                      DB
	MinIO                   MinIO
	JWTSecretKey            string
	TokenDuration           time.Duration
	MaxUploadSize           int64
	PasswordHashConcurrency int64
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns DATABASE_URL when set, otherwise a key/value connection string
// assembled from the DB_* parts.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
	)
}

// LoadEnv reads .env into the process environment if the file exists.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found, using environment variables")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return b, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return n, nil
}

func LoadDB() (DB, error) {
	maxConns, err := getEnvAsInt("MAX_DB_CONNECTIONS", 10)
	if err != nil {
		return DB{}, err
	}
	if maxConns < 1 {
		return DB{}, errors.New("MAX_DB_CONNECTIONS must be positive")
	}

	db := DB{
		URL:        getEnv("DATABASE_URL", ""),
		DbHOST:     getEnv("DB_HOST", ""),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", ""),
		DbNAME:     getEnv("DB_NAME", "rivvo"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
		MaxConns:   maxConns,
	}
	if db.URL == "" && db.DbHOST == "" {
		return DB{}, errors.New("DATABASE_URL or DB_HOST must be set")
	}
	return db, nil
}

func LoadMinIO() (MinIO, error) {
	useSSL, err := getEnvBool("MINIO_USE_SSL", false)
	if err != nil {
		return MinIO{}, err
	}
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		SecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		BucketName: getEnv("MINIO_BUCKET", "avatars"),
		UseSSL:     useSSL,
		PublicURL:  strings.TrimSuffix(getEnv("MINIO_PUBLIC_URL", ""), "/"),
	}, nil
}

// LoadConfig builds the configuration once from the environment.
// The returned value is not modified after startup.
func LoadConfig() (*Config, error) {
	db, err := LoadDB()
	if err != nil {
		return nil, err
	}

	minio, err := LoadMinIO()
	if err != nil {
		return nil, err
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}

	port, err := getEnvAsInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	maxUpload, err := getEnvAsInt("MAX_UPLOAD_SIZE", 5*1024*1024)
	if err != nil {
		return nil, err
	}

	hashConcurrency, err := getEnvAsInt("PASSWORD_HASH_CONCURRENCY", runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	if hashConcurrency < 1 {
		hashConcurrency = 1
	}

	return &Config{
		Env:                     getEnv("ENV", "dev"),
		Host:                    getEnv("HOST", "127.0.0.1"),
		ServerPort:              port,
		CORSOrigin:              getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DB:                      db,
		MinIO:                   minio,
		JWTSecretKey:            secret,
		TokenDuration:           24 * time.Hour,
		MaxUploadSize:           int64(maxUpload),
		PasswordHashConcurrency: int64(hashConcurrency),
	}, nil
}
