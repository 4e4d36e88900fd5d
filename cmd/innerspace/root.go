package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"innerspace.app/site/internal/appconf"
)

const envPrefix = "INNERSPACE"

// newRootCommand wires the CLI. Settings come from flags, then INNERSPACE_*
// environment variables, then an optional config file, then defaults.
func newRootCommand() *cobra.Command {
	v := viper.New()
	defaults := appconf.Default()

	root := &cobra.Command{
		Use:          "innerspace",
		Short:        "Serve or export the InnerSpace landing page",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			if path := v.GetString("config"); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", path, err)
				}
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "optional config file (yaml, json or toml)")
	root.PersistentFlags().String("env", defaults.Env.String(), "Environment (development|test|production)")
	root.PersistentFlags().String("image-host", defaults.ImageHost, "placeholder image host")

	root.AddCommand(serveCmd(v), exportCmd(v))
	return root
}

func configFromViper(v *viper.Viper) (appconf.Config, error) {
	defaults := appconf.Default()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("rate-limit", defaults.RateLimit)
	v.SetDefault("gzip-min-size", defaults.GzipMinSize)

	cfg := appconf.Config{
		Port:        v.GetInt("port"),
		Env:         appconf.EnvFlagToEnvironment(v.GetString("env")),
		ImageHost:   strings.TrimSpace(v.GetString("image-host")),
		RateLimit:   v.GetInt("rate-limit"),
		GzipMinSize: v.GetInt("gzip-min-size"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
