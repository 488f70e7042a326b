package main

import "github.com/spf13/cobra"

// Version is the CLI version reported by the version command.
const Version = "0.1.0"

// Global flag values. Flags override the config file, which overrides the
// built-in defaults.
var (
	flagConfig    string
	flagMongoURI  string
	flagMongoDB   string
	flagWarehouse string
)

var rootCmd = &cobra.Command{
	Use:   "salesmart",
	Short: "Salesmart rebuilds a sales data mart from an operational store",
	Long: `Salesmart is a batch ETL job. It extracts users, products, orders, and
order line items from a MongoDB document store, rebuilds the dimensional
star schema in a local SQLite file, and terminates. Every run is a full
refresh; the previous warehouse file is discarded.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./salesmart.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagMongoURI, "source-uri", "", "MongoDB connection URI")
	rootCmd.PersistentFlags().StringVar(&flagMongoDB, "source-db", "", "MongoDB database name")
	rootCmd.PersistentFlags().StringVar(&flagWarehouse, "warehouse", "", "SQLite warehouse file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
