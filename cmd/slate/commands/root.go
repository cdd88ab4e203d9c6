// Package commands implements the slate command-line interface.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Slate ORM - declarative PostgreSQL ORM for Go",
	Long: `Slate ORM is a declarative PostgreSQL ORM for Go with explicit field
declarations, generated DDL, and a lazy filter-composable query builder.

The database URL is resolved from the --db flag, the SLATE_DB environment
variable, or a slate.yaml config file, in that order.`,
	Version: "0.3.1",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "Database connection URL")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./slate.yaml)")

	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("slate")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SLATE")
	viper.AutomaticEnv()

	// Missing config file is fine, flags and env still apply.
	_ = viper.ReadInConfig()
}

// databaseURL resolves the connection URL from flag, env or config file.
func databaseURL() (string, error) {
	if url := viper.GetString("db"); url != "" {
		return url, nil
	}
	return "", fmt.Errorf("database URL required: set --db, SLATE_DB, or db in slate.yaml")
}
