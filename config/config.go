package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	FunctionsPort  string `mapstructure:"FUNCTIONS_CUSTOMHANDLER_PORT"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	JWTSigningKey  string `mapstructure:"JWT_SIGNING_KEY"`
	JWTIssuer      string `mapstructure:"JWT_ISSUER"`
	JWTAudience    string `mapstructure:"JWT_AUDIENCE"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RateLimit      int    `mapstructure:"RATE_LIMIT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	GRPCPort       string `mapstructure:"GRPC_PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
}

var keys = []string{
	"PORT",
	"FUNCTIONS_CUSTOMHANDLER_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSLMODE",
	"JWT_SIGNING_KEY",
	"JWT_ISSUER",
	"JWT_AUDIENCE",
	"REDIS_ADDR",
	"RATE_LIMIT",
	"ALLOWED_ORIGINS",
	"GRPC_PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// LoadConfig reads app.env from path if it exists and lets the environment
// override it.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_ISSUER", "TokenProvider")
	v.SetDefault("JWT_AUDIENCE", "Silicon")
	v.SetDefault("RATE_LIMIT", 120)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.AutomaticEnv()

	// Bind explicitly so Unmarshal sees variables that are not in the file.
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			err = errors.Wrap(err, "read app.env")
			return
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		err = errors.Wrap(err, "decode config")
		return
	}

	if config.FunctionsPort != "" {
		config.Port = config.FunctionsPort
	}
	config.Port = listenAddr(config.Port)
	config.GRPCPort = listenAddr(config.GRPCPort)
	err = config.Validate()
	return
}

// listenAddr turns a bare port such as "8080" into ":8080". Values that
// already carry a host or colon are kept.
func listenAddr(addr string) string {
	if addr == "" || strings.Contains(addr, ":") {
		return addr
	}
	return ":" + addr
}

func (c Config) Validate() error {
	if c.JWTSigningKey == "" {
		return errors.New("JWT_SIGNING_KEY is required")
	}
	if c.JWTIssuer == "" || c.JWTAudience == "" {
		return errors.New("JWT_ISSUER and JWT_AUDIENCE must not be empty")
	}
	if c.RateLimit < 0 {
		return errors.Errorf("RATE_LIMIT must not be negative, got %d", c.RateLimit)
	}
	return nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
