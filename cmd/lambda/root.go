package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Lambda-calculus parser and scope checker",
	Long: `lambda parses untyped lambda-calculus expressions such as \f.\x.f (f x),
rejecting malformed input, shadowed binders and unbound references.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostics")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	viper.SetEnvPrefix("LAMBDA")
	viper.AutomaticEnv()
}

// setupOutput applies the color and logging settings shared by every command.
func setupOutput(_ *cobra.Command, _ []string) error {
	if viper.GetBool("no_color") {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return checkFormat(viper.GetString("format"))
}
