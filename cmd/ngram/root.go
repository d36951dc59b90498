package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dasa.cc/ngram/internal/config"
	"dasa.cc/ngram/ngram"
)

func configPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "ngram"))
	}
	return paths
}

// newRootCmd searches paths for a config file.
func newRootCmd(paths ...string) *cobra.Command {
	v := config.New(paths...)
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "ngram [x y]",
		Short: "Jaccard similarity of character n-gram sets",
		Long: `ngram compares the sets of contiguous n-character substrings of x and y
and prints |X ∩ Y| / |X ∪ Y|, then X, then Y.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "ngram" && len(args) == 2 {
				v.Set(config.KeyX, args[0])
				v.Set(config.KeyY, args[1])
			}
			var err error
			if cfg, err = loadConfig(cmd, v); err != nil {
				return err
			}
			level := zerolog.InfoLevel
			if cfg.Debug {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.PersistentFlags().IntP(config.KeyN, "n", config.DefaultN, "n-gram length")
	cmd.PersistentFlags().BoolP(config.KeyDebug, "d", false, "debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ./ngram.yaml)")

	cmd.AddCommand(newReplCmd(&cfg))
	return cmd
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	for _, key := range []string{config.KeyN, config.KeyDebug} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return config.Config{}, err
		}
	}
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		v.SetConfigFile(file)
	}
	return config.Load(v)
}

func run(out io.Writer, cfg config.Config) error {
	x := ngram.NewSet(cfg.X, cfg.N)
	y := ngram.NewSet(cfg.Y, cfg.N)

	u, err := ngram.Jaccard(x, y)
	if err != nil {
		return fmt.Errorf("comparing %q and %q with n=%d: %w", cfg.X, cfg.Y, cfg.N, err)
	}
	log.Debug().
		Int("n", cfg.N).
		Int("x", len(x)).
		Int("y", len(y)).
		Float64("similarity", u).
		Msg("compared n-gram sets")

	fmt.Fprintln(out, u)
	fmt.Fprintln(out, x)
	fmt.Fprintln(out, y)
	return nil
}
