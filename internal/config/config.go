package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSecretKey is the development fallback used to sign tokens when no
// SECRET_KEY is configured. It MUST be overridden in any real deployment;
// main logs a warning whenever this value is in use.
const DefaultSecretKey = "secret key"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Auth struct {
		SecretKey       string
		TokenTTLMinutes int
		BcryptCost      int
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("PROPERTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the token secret is also reachable under its conventional bare name
	_ = v.BindEnv("auth.secretkey", "PROPERTY_AUTH_SECRETKEY", "SECRET_KEY")

	v.SetDefault("server.addr", "0.0.0.0:3000")
	v.SetDefault("database.path", "data/property.db")
	v.SetDefault("auth.secretkey", DefaultSecretKey)
	v.SetDefault("auth.tokenttlminutes", 0)
	v.SetDefault("auth.bcryptcost", 10)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
