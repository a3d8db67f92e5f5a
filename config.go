package hookline

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures runtime settings for the webhook server.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	WebhookPath     string        `mapstructure:"webhook_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig loads server configuration from defaults, an optional config
// file under ./configs, and HOOKLINE_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix("HOOKLINE")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("webhook_path", "/webhook")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
