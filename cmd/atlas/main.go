package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	settings = config.DefaultSettings()
	rootCmd  = &cobra.Command{
		Use:   "atlas",
		Short: "🗺️  Religious demographics and engagement strategies for Sri Lanka's districts",
		Long: `atlas: explore the religious composition of Sri Lanka's 25 districts,
derived diversity statistics, and the engagement strategies planned for each.

Run 'atlas dashboard' for the interactive view.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/atlas/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	rootCmd.PersistentFlags().Int("decimals", 1, "decimal places for percentages (0-4)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyTheme, rootCmd.PersistentFlags().Lookup("theme"))
	_ = viper.BindPFlag(config.KeyDecimals, rootCmd.PersistentFlags().Lookup("decimals"))

	// Add commands
	rootCmd.AddCommand(overviewCmd())
	rootCmd.AddCommand(districtCmd())
	rootCmd.AddCommand(provinceCmd())
	rootCmd.AddCommand(strategiesCmd())
	rootCmd.AddCommand(analyticsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/atlas", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. ATLAS_DISPLAY_THEME
	viper.SetEnvPrefix("ATLAS")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded, err := config.LoadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	settings = loaded

	if err := common.SetupLogger(settings.LogLevel, settings.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded", "config", viper.ConfigFileUsed(), "theme", settings.Theme)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("atlas version", "version", version)
		},
	}
}
