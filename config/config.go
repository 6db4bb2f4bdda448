// Package config loads the application configuration from an optional YAML
// file with environment-variable overrides on top.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid   string `yaml:"appid" json:"appid"`
	DataDir string `yaml:"data_dir" json:"data_dir"` // root of the DATABASE tree
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"` // session cookie signing key
}

type ShopConfig struct {
	// FreightCarrier names the house carrier recorded on orders when the
	// buyer does not ship on their own account.
	FreightCarrier string `yaml:"freight_carrier" json:"freight_carrier"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System SystemConfig `yaml:"system" json:"system"`
	Web    WebConfig    `yaml:"web" json:"web"`
	Shop   ShopConfig   `yaml:"shop" json:"shop"`
	Logger LoggerConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SystemConfig{
		Appid:   "ShopTemplateSystem",
		DataDir: "DATABASE",
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   8080,
		Secret: "sts-dev-secret",
	},
	Shop: ShopConfig{
		FreightCarrier: "LR Paris",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "shopd.log",
	},
}

// LoadConfig reads the YAML file at path when it exists, then applies
// environment overrides. A missing file is not an error: defaults plus
// environment are enough to run.
func LoadConfig(path string) *AppConfig {
	cfg := DefaultAppConfig
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	cfg.System.DataDir = envOrDefault("SHOP_DATA_DIR", cfg.System.DataDir)
	cfg.Web.Host = envOrDefault("SHOP_WEB_HOST", cfg.Web.Host)
	cfg.Web.Port = envOrDefaultInt("SHOP_WEB_PORT", cfg.Web.Port)
	cfg.Web.Secret = envOrDefault("SHOP_WEB_SECRET", cfg.Web.Secret)
	cfg.Shop.FreightCarrier = envOrDefault("SHOP_FREIGHT_CARRIER", cfg.Shop.FreightCarrier)
	cfg.Logger.Mode = envOrDefault("SHOP_LOGGER_MODE", cfg.Logger.Mode)
	return &cfg
}

func envOrDefault(key, def string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return def
}
