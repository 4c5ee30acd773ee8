// Package cli provides the Cobra-based CLI for marketly.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"marketly/catalog"
	"marketly/domain"
	"marketly/shop"
	"marketly/store"
	"marketly/util"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:           "marketly",
		Short:         "A storefront: catalog, cart, wishlist and orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests inject the shop
			if app != nil {
				return nil
			}

			_ = godotenv.Load()

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			logger := util.NewLogger(os.Stderr, viper.GetString("log-level"))
			slog.SetDefault(logger)

			p, err := store.Open(store.Options{
				Kind:          viper.GetString("store"),
				Path:          viper.GetString("store-file"),
				RedisAddr:     viper.GetString("redis-addr"),
				RedisPassword: viper.GetString("redis-password"),
				RedisDB:       viper.GetInt("redis-db"),
			}, logger)
			if err != nil {
				return err
			}
			persister = p
			app = shop.New(cmd.Context(), p, catalog.Default(), logger)
			return nil
		},
	}

	app       *shop.Shop
	persister *store.Persister
)

func init() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("marketly> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				if err := runLine(line); err != nil {
					fmt.Fprintln(os.Stderr, Describe(err))
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "file", "store backend: memory|file|redis")
	rootCmd.PersistentFlags().String("store-file", "data/marketly.json", "file store path")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "redis address")
	rootCmd.PersistentFlags().String("redis-password", "", "redis password")
	rootCmd.PersistentFlags().Int("redis-db", 0, "redis database")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	for _, name := range []string{"store", "store-file", "redis-addr", "redis-password", "redis-db", "config", "log-level"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("MARKETLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// runLine executes one shell line with every flag back at its default.
func runLine(line string) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(strings.Fields(line))
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

// resetFlags restores the local flags of cmd and its subcommands. Persistent
// flags keep their values for the whole session.
func resetFlags(cmd *cobra.Command) {
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// Describe prefixes outcome errors with their reason code.
func Describe(err error) string {
	if r := domain.Reason(err); r != domain.ReasonInternal {
		return fmt.Sprintf("%s: %v", r, err)
	}
	return err.Error()
}

// requireAccess applies the page guard before a command runs.
func requireAccess(req domain.Requirement, page string) error {
	d := app.Authorize(req, page)
	if d.Allowed {
		return nil
	}
	if d.Redirect == domain.LoginPath {
		return fmt.Errorf("login required: redirect to %s (from %s)", d.Redirect, d.From)
	}
	return fmt.Errorf("access denied: %s requires %s, redirect to %s", page, req, d.Redirect)
}

func Execute() error {
	defer func() {
		if persister != nil {
			_ = persister.Close()
		}
	}()
	return rootCmd.Execute()
}
