package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the profile data lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .anilog config (yaml implicit) from the working
// directory or ANILOG_CONFIG_PATH, with ANILOG_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.anilog.db")
	viper.SetConfigName(".anilog")
	viper.SetEnvPrefix("ANILOG")
	viper.AutomaticEnv()

	if override := os.Getenv("ANILOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding data path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
