package config

// Redis: пустой адрес отключает ограничение частоты запросов.
type Redis struct {
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

type RateLimit struct {
	PerMinute int64 `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	PerHour   int64 `env:"RATE_LIMIT_PER_HOUR" envDefault:"60"`
}
