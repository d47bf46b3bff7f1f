package config

import "time"

// HTTP: WriteTimeout учитывает, что ответ модели может идти десятки секунд.
// TrustedProxies (CIDR или адреса) разрешает брать IP клиента из
// X-Forwarded-For; пустой список означает, что заголовок игнорируется.
type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	TrustedProxies    []string      `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
}
