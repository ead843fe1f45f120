package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type StorageConfig struct {
	// Path of the bbolt record file. Empty means <workdir>/storefront.db.
	Path string `yaml:"path" json:"path"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "storefront",
		Location: "America/El_Salvador",
		Workdir:  "/var/storefront",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1880,
	},
	Storage: StorageConfig{
		Path: "",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/storefront/storefront.log",
	},
}

func setEnvStringValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the YAML config file, falling back to built-in defaults
// when the file is absent. STOREFRONT_* environment variables override
// file values.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvStringValue("STOREFRONT_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("STOREFRONT_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvStringValue("STOREFRONT_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("STOREFRONT_WEB_PORT", &cfg.Web.Port)
	setEnvStringValue("STOREFRONT_STORAGE_PATH", &cfg.Storage.Path)
	setEnvStringValue("STOREFRONT_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("STOREFRONT_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvStringValue("STOREFRONT_LOGGER_FILENAME", &cfg.Logger.Filename)

	return cfg
}
