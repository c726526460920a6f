package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MONTLUXE_APP_ENV" required:"true"`
	Port         string `envconfig:"MONTLUXE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MONTLUXE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MONTLUXE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"MONTLUXE_DB_DSN"`

	Host     string `envconfig:"MONTLUXE_DB_HOST"`
	Port     int    `envconfig:"MONTLUXE_DB_PORT" default:"5432"`
	User     string `envconfig:"MONTLUXE_DB_USER"`
	Password string `envconfig:"MONTLUXE_DB_PASSWORD"`
	Name     string `envconfig:"MONTLUXE_DB_NAME"`
	SSLMode  string `envconfig:"MONTLUXE_DB_SSLMODE" default:"disable"`

	AutoMigrate bool `envconfig:"MONTLUXE_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"MONTLUXE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MONTLUXE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MONTLUXE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MONTLUXE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a postgres DSN from the discrete host settings when an
// explicit DSN was not provided.
func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range []string{EnvDBHost, EnvDBUser, EnvDBName} {
		if parts[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"MONTLUXE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MONTLUXE_REDIS_ADDR"`
	Password     string        `envconfig:"MONTLUXE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MONTLUXE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MONTLUXE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MONTLUXE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MONTLUXE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MONTLUXE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MONTLUXE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MONTLUXE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MONTLUXE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MONTLUXE_JWT_EXPIRATION_MINUTES" default:"60"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MONTLUXE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MONTLUXE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MONTLUXE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MONTLUXE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MONTLUXE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"MONTLUXE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit int           `envconfig:"MONTLUXE_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"MONTLUXE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow       time.Duration `envconfig:"MONTLUXE_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupIPLimit      int           `envconfig:"MONTLUXE_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"10"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MONTLUXE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
