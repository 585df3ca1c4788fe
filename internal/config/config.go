package config

import "time"

type Config struct {
	HTTPPort           string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64

	Backend BackendConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type MongoConfig struct {
	URI    string
	DBName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	backendURL, err := requiredString("BACKEND_BASE_URL")
	if err != nil {
		return nil, err
	}

	redisDB, err := intWithDefault("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:           stringWithDefault("HTTP_PORT", "8080"),
		RequestTimeout:     durationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 6 << 20, // proof uploads cap at 5MB plus form overhead

		Backend: BackendConfig{
			BaseURL: backendURL,
			Timeout: durationWithDefault("BACKEND_TIMEOUT", 15*time.Second),
		},
		Mongo: MongoConfig{
			URI:    stringWithDefault("MONGO_URI", "mongodb://localhost:27017"),
			DBName: stringWithDefault("MONGO_DB_NAME", "batikstore"),
		},
		Redis: RedisConfig{
			Addr:     stringWithDefault("REDIS_ADDR", "localhost:6379"),
			Password: stringWithDefault("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
	}, nil
}
