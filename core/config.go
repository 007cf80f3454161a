package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string
		Build        string
		Env          string // DEV (local; default), TEST, QA, PROD
		Debug        bool
		TestMode     bool
		RollbarToken string

		Server   ServerConfig
		Storage  StorageConfig
		Redis    RedisConfig
		Database DatabaseConfig
		Gemini   GeminiConfig
	}

	ServerConfig struct {
		Host            string
		Address         string
		DebugAddress    string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	StorageConfig struct {
		Engine string // memory | file | redis | sql
		Key    string
		Dir    string
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	DatabaseConfig struct {
		Engine     string // postgres | sqlite
		Host       string
		Port       int
		User       string
		Password   string
		Name       string // database name, or file path for sqlite
		DisableTLS bool
	}

	GeminiConfig struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}
)

// Address returns the "host:port" of the database server.
func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewConfig loads the configuration from the environment.
// config/.env.<env> is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Journal FLE")
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugAddress", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("storage.engine", "file")
	conf.SetDefault("storage.key", "fle-logbook-data")
	conf.SetDefault("storage.dir", "data")
	conf.SetDefault("redis.addr", "localhost:6379")
	conf.SetDefault("redis.password", "")
	conf.SetDefault("redis.db", 0)
	conf.SetDefault("database.engine", "postgres")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", 5432)
	conf.SetDefault("database.user", "logbook")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.name", "logbook")
	conf.SetDefault("database.disableTLS", true)
	conf.SetDefault("gemini.apiKey", "")
	conf.SetDefault("gemini.model", "gemini-2.5-flash")
	conf.SetDefault("gemini.timeout", 60*time.Second)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	// the web client used to read its Gemini key from API_KEY
	apiKey := conf.GetString("gemini.apiKey")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	return &Config{
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("server.host"),
			Address:         conf.GetString("server.address"),
			DebugAddress:    conf.GetString("server.debugAddress"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		Storage: StorageConfig{
			Engine: strings.ToLower(conf.GetString("storage.engine")),
			Key:    conf.GetString("storage.key"),
			Dir:    conf.GetString("storage.dir"),
		},
		Redis: RedisConfig{
			Addr:     conf.GetString("redis.addr"),
			Password: conf.GetString("redis.password"),
			DB:       conf.GetInt("redis.db"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("database.engine"),
			Host:       conf.GetString("database.host"),
			Port:       conf.GetInt("database.port"),
			User:       conf.GetString("database.user"),
			Password:   conf.GetString("database.password"),
			Name:       conf.GetString("database.name"),
			DisableTLS: conf.GetBool("database.disableTLS"),
		},
		Gemini: GeminiConfig{
			APIKey:  apiKey,
			Model:   conf.GetString("gemini.model"),
			Timeout: conf.GetDuration("gemini.timeout"),
		},
	}
}

func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "config"
}
