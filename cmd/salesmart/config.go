// Config loading for the salesmart CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dukaforge/salesmart/pkg/types"
)

const (
	configFileName = "salesmart"
	configFileType = "yaml"

	cfgKeyMongoURI      = "mongo_uri"
	cfgKeyMongoDatabase = "mongo_database"
	cfgKeyWarehousePath = "warehouse_path"
)

// loadConfig resolves the effective Config from defaults, the config file,
// and flag overrides, in increasing precedence. A missing default config
// file is not an error; a missing file named explicitly via --config is.
func loadConfig() (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyMongoURI, types.DefaultMongoURI)
	v.SetDefault(cfgKeyMongoDatabase, types.DefaultMongoDatabase)
	v.SetDefault(cfgKeyWarehousePath, types.DefaultWarehousePath)

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return types.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := types.Config{
		MongoURI:      v.GetString(cfgKeyMongoURI),
		MongoDatabase: v.GetString(cfgKeyMongoDatabase),
		WarehousePath: v.GetString(cfgKeyWarehousePath),
	}

	// Flags override file values.
	if flagMongoURI != "" {
		cfg.MongoURI = flagMongoURI
	}
	if flagMongoDB != "" {
		cfg.MongoDatabase = flagMongoDB
	}
	if flagWarehouse != "" {
		cfg.WarehousePath = flagWarehouse
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
