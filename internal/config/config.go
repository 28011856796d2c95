package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	WebSocket WebSocketConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Auction   AuctionConfig
	Stream    StreamConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// Addr is the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WebSocketConfig struct {
	PingInterval   time.Duration `mapstructure:"ping_interval"`
	PongWait       time.Duration `mapstructure:"pong_wait"`
	WriteWait      time.Duration `mapstructure:"write_wait"`
	MaxMessageSize int64         `mapstructure:"max_message_size"`
	SendBuffer     int           `mapstructure:"send_buffer"`
}

type StorageConfig struct {
	Driver string
	Seed   bool
}

type RedisConfig struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string `mapstructure:"key_prefix"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type AuctionConfig struct {
	SweepInterval time.Duration   `mapstructure:"sweep_interval"`
	AntiSnipe     AntiSnipeConfig `mapstructure:"anti_snipe"`
}

type AntiSnipeConfig struct {
	Enabled   bool
	Window    time.Duration
	Extension time.Duration
}

type StreamConfig struct {
	BroadcastViewerUpdates bool `mapstructure:"broadcast_viewer_updates"`
}

type LogConfig struct {
	Level string
}

// Load reads config/config.yaml when present and lets the environment
// override any key, e.g. REDIS_ADDRESS for redis.address
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

// LoadFrom is Load with an explicit config directory and file name
func LoadFrom(configPath, configName string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("redis.address", "REDIS_ADDRESS")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Parse durations
	cfg.WebSocket.PingInterval = parseDuration(v, "websocket.ping_interval", 30*time.Second)
	cfg.WebSocket.PongWait = parseDuration(v, "websocket.pong_wait", 60*time.Second)
	cfg.WebSocket.WriteWait = parseDuration(v, "websocket.write_wait", 10*time.Second)
	cfg.Auction.SweepInterval = parseDuration(v, "auction.sweep_interval", time.Second)
	cfg.Auction.AntiSnipe.Window = parseDuration(v, "auction.anti_snipe.window", 5*time.Minute)
	cfg.Auction.AntiSnipe.Extension = parseDuration(v, "auction.anti_snipe.extension", 2*time.Minute)

	if cfg.Storage.Driver != "memory" && cfg.Storage.Driver != "redis" {
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("websocket.ping_interval", "30s")
	v.SetDefault("websocket.pong_wait", "60s")
	v.SetDefault("websocket.write_wait", "10s")
	v.SetDefault("websocket.max_message_size", 4096)
	v.SetDefault("websocket.send_buffer", 256)
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.seed", true)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "live")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auction.sweep_interval", "1s")
	v.SetDefault("auction.anti_snipe.enabled", false)
	v.SetDefault("auction.anti_snipe.window", "5m")
	v.SetDefault("auction.anti_snipe.extension", "2m")
	v.SetDefault("stream.broadcast_viewer_updates", false)
	v.SetDefault("log.level", "info")
}

func parseDuration(v *viper.Viper, key string, defaultVal time.Duration) time.Duration {
	str := v.GetString(key)
	d, err := time.ParseDuration(str)
	if err != nil {
		return defaultVal
	}
	return d
}
