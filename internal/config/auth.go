package config

import "time"

type Auth struct {
	JWTSecret  string        `env:"JWT_SECRET,notEmpty" json:"-"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
