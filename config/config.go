// api/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server   ServerConfiguration
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Auth     AuthConfiguration
	Audit    AuditConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the relational database connection
type DatabaseConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// AuthConfiguration stores token and refresh-session settings
type AuthConfiguration struct {
	Secret            string
	AccessTokenTTL    string
	RefreshSessionTTL string
	RefreshCookieName string
}

// AuditConfiguration stores data for the Elasticsearch audit sink
type AuditConfiguration struct {
	ElasticsearchURL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=skillboard port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "100s")
	viper.SetDefault("audit.elasticsearchUrl", "http://localhost:9200")
	viper.SetDefault("auth.secret", "change-me-in-production")
	viper.SetDefault("auth.accessTokenTTL", "30m")
	viper.SetDefault("auth.refreshSessionTTL", "720h")
	viper.SetDefault("auth.refreshCookieName", "refresh_token")
	viper.SetDefault("lookup.cities", []string{"Moscow", "Astrakhan", "Saint Petersburg", "Sochi", "London"})
	viper.SetDefault("lookup.skills", []string{"go", "python", "sql", "redis", "docker"})
	viper.SetDefault("ratelimit.listUsers.limit", 2)
	viper.SetDefault("ratelimit.listUsers.window", "60s")
	viper.SetDefault("ratelimit.listPosts.limit", 30)
	viper.SetDefault("ratelimit.listPosts.window", "60s")
	viper.SetDefault("log.dir", "logs")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a list of strings from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
