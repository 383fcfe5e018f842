package config

import (
	"errors"
	"fmt"
	"time"

	"trivia/models"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultQuestionsPerPage = 10

type Config struct {
	Port             string
	BindAddress      string
	GinMode          string
	LogLevel         string
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBPath           string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	CategoryCacheTTL time.Duration
	QuestionsPerPage int
	SeedCategories   bool
}

// Load reads configuration from the environment and an optional .env file.
func Load() *Config {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	// a missing .env is fine, the environment and defaults still apply
	_ = v.ReadInConfig()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("BIND_ADDRESS", "")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "trivia")
	v.SetDefault("DB_PASSWORD", "trivia")
	v.SetDefault("DB_NAME", "trivia")
	v.SetDefault("DB_PATH", "trivia.db")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CATEGORY_CACHE_TTL", "10m")
	v.SetDefault("QUESTIONS_PER_PAGE", DefaultQuestionsPerPage)
	v.SetDefault("SEED_CATEGORIES", true)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:             v.GetString("PORT"),
		BindAddress:      v.GetString("BIND_ADDRESS"),
		GinMode:          v.GetString("GIN_MODE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		DBDriver:         v.GetString("DB_DRIVER"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBPath:           v.GetString("DB_PATH"),
		RedisHost:        v.GetString("REDIS_HOST"),
		RedisPort:        v.GetString("REDIS_PORT"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		CategoryCacheTTL: v.GetDuration("CATEGORY_CACHE_TTL"),
		QuestionsPerPage: v.GetInt("QUESTIONS_PER_PAGE"),
		SeedCategories:   v.GetBool("SEED_CATEGORIES"),
	}
	if cfg.QuestionsPerPage <= 0 {
		cfg.QuestionsPerPage = DefaultQuestionsPerPage
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Bootstrap creates the tables and, when asked to, seeds the default
// categories into an empty categories table.
func Bootstrap(db *gorm.DB, seed bool) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if !seed {
		return nil
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, len(models.DefaultCategories))
	copy(categories, models.DefaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

var ErrRedisDisabled = errors.New("redis is not configured")

func InitRedis(cfg *Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		return nil, ErrRedisDisabled
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return client, nil
}
