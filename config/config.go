package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort uint16 `envconfig:"VITALOG_HTTP_SERVER_PORT" default:"8080" required:"true"`

	// Measurement window used when generating trend insights
	TrendWindowDays  int `envconfig:"VITALOG_TREND_WINDOW_DAYS" default:"7"`
	TrendWindowCount int `envconfig:"VITALOG_TREND_WINDOW_COUNT" default:"5"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
