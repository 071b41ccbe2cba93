package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Data      DataConfig
	Retrieval RetrievalConfig
	Cache     CacheConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

// DSN renders the connection string understood by pgx.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Corpus sources
const (
	CorpusSourceCSV      = "csv"
	CorpusSourcePostgres = "postgres"
)

type DataConfig struct {
	SeedAnswersPath string
	AdvicePath      string
	TrainingCSV     string
	ModelPath       string
	CorpusSource    string
	Watch           bool // reload seed and intent files when they change
}

type RetrievalConfig struct {
	CorpusThreshold     float64 // minimum cosine similarity for a corpus match, inclusive
	IntentMinSimilarity float64 // intent matches must score strictly above this
	CorpusNGramMin      int
	CorpusNGramMax      int
	IntentNGramMin      int
	IntentNGramMax      int
}

type CacheConfig struct {
	RedisAddr     string // empty disables the answer cache
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Enabled reports whether an answer cache is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "600"))

	dataDir := getEnv("DATA_DIR", "data")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cyber_advisor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 4)),
		},
		Data: DataConfig{
			SeedAnswersPath: getEnv("SEED_ANSWERS_PATH", dataDir+"/seed_answers.json"),
			AdvicePath:      getEnv("ADVICE_PATH", dataDir+"/advice.json"),
			TrainingCSV:     getEnv("TRAINING_CSV", dataDir+"/training.csv"),
			ModelPath:       getEnv("MODEL_PATH", "models/model.json"),
			CorpusSource:    getEnv("CORPUS_SOURCE", CorpusSourceCSV),
			Watch:           getEnvBool("DATA_WATCH", false),
		},
		Retrieval: RetrievalConfig{
			CorpusThreshold:     getEnvFloat("CORPUS_SIMILARITY_THRESHOLD", 0.70),
			IntentMinSimilarity: getEnvFloat("INTENT_MIN_SIMILARITY", 0),
			CorpusNGramMin:      getEnvInt("CORPUS_NGRAM_MIN", 3),
			CorpusNGramMax:      getEnvInt("CORPUS_NGRAM_MAX", 5),
			IntentNGramMin:      getEnvInt("INTENT_NGRAM_MIN", 1),
			IntentNGramMax:      getEnvInt("INTENT_NGRAM_MAX", 2),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			TTL:           time.Duration(cacheTTL) * time.Second,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

// DefaultRetrieval returns the tuned retrieval parameters.
func DefaultRetrieval() RetrievalConfig {
	return RetrievalConfig{
		CorpusThreshold:     0.70,
		IntentMinSimilarity: 0,
		CorpusNGramMin:      3,
		CorpusNGramMax:      5,
		IntentNGramMin:      1,
		IntentNGramMax:      2,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
