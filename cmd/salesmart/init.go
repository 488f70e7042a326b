package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dukaforge/salesmart/pkg/types"
)

// defaultConfigPath is where init writes the config file.
const defaultConfigPath = "salesmart.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Create salesmart.yaml with the default connection settings, if it does not already exist.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigPath
	if flagConfig != "" {
		path = flagConfig
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := types.Config{
		MongoURI:      types.DefaultMongoURI,
		MongoDatabase: types.DefaultMongoDatabase,
		WarehousePath: types.DefaultWarehousePath,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
