package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aweris/mygit"
	"github.com/aweris/mygit/internal/compression"
)

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Each call returns fresh commands
// with their own flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mygit",
		Short:        "Minimal git object database",
		Long:         "Initialize repositories and read or write git loose objects.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/mygit/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCmd(), newHashObjectCmd(), newCatFileCmd())

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	v := viper.GetViper()

	if cfg, _ := cmd.Flags().GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MYGIT")
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("compression_level", compression.DefaultLevel)
	v.SetDefault("cache_size", mygit.DefaultCacheSize)
	v.SetDefault("verify", false)

	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mygit")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "mygit")
	}
	return ".mygit"
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(cmd.ErrOrStderr()), level)
	return zap.New(core), nil
}

// openDB opens the object database of the repository containing the
// working directory.
func openDB(cmd *cobra.Command) (*mygit.DB, error) {
	root, ok, err := mygit.LocateRoot("")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, mygit.ErrRootNotFound
	}

	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	return mygit.Open(root,
		mygit.WithLogger(log),
		mygit.WithCacheSize(viper.GetInt("cache_size")),
		mygit.WithCompressionLevel(viper.GetInt("compression_level")),
		mygit.WithVerify(viper.GetBool("verify")),
	)
}
