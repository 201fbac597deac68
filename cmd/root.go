/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/suderio/ascension/internal/data"
	"github.com/suderio/ascension/internal/engine"
	"github.com/suderio/ascension/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ascension",
	Short: "Deck-building combat engine for a cultivation roguelike",
	Long: `Ascension runs turn-based card battles between a cultivator and the
demons of the catalog.

Use 'battle' to fight interactively, 'simulate' to autoplay many fights
and 'catalog' to inspect the loaded cards, enemies, relics and classes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ascension.yaml)")
	rootCmd.PersistentFlags().String("data_dir", "", "Directory with catalog YAML files overriding the embedded ones")
	rootCmd.PersistentFlags().String("journal_dir", "./journals", "Directory where battle journals are written")
	rootCmd.PersistentFlags().String("log_level", "info", "Log level (debug, info, warn, error)")

	for _, key := range []string{"data_dir", "journal_dir", "log_level"} {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)))
	}
	viper.SetDefault("seed", 0)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ascension")
	}

	viper.SetEnvPrefix("ascension")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() (*zap.Logger, error) {
	return logging.New(viper.GetString("log_level"))
}

func loadCatalog() (*data.Catalog, error) {
	var dirs []string
	if dir := viper.GetString("data_dir"); dir != "" {
		dirs = append(dirs, dir)
	}
	return data.NewLoader(dirs).LoadCatalog()
}

// resolveSeed prefers the flag, then the config, then the clock.
func resolveSeed(cmd *cobra.Command) int64 {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = viper.GetInt64("seed")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

func newRand(seed int64) engine.Rand {
	return engine.NewRand(seed)
}
