package main

import (
	"errors"

	"github.com/fenthope/reco"
	"github.com/spf13/cobra"

	"github.com/infinite-iroha/pathmaker"
	"github.com/infinite-iroha/pathmaker/internal/config"
	"github.com/infinite-iroha/pathmaker/sitemap"
)

var errNoSitemap = errors.New("no sitemap given: pass a file or set sitemap in the config")

// app carries state shared by all sub commands.
type app struct {
	loader *config.Loader
	cfg    config.Config
	logger *reco.Logger
}

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *config.Loader) *cobra.Command {
	var configFile string
	a := &app{loader: loader}

	cmd := &cobra.Command{
		Use:           "pathmaker",
		Short:         "Build URLs and paths from templates and site maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = pathmaker.NewLogger(config.LogConfig(cfg.LogLevel))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			pathmaker.CloseLogger(a.logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.String("delimiter", pathmaker.DefaultDelimiter, "path delimiter")
	flags.String("token-prefix", pathmaker.DefaultTokenPrefix, "token prefix (one character)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")

	v := loader.Viper()
	_ = v.BindPFlag("delimiter", flags.Lookup("delimiter"))
	_ = v.BindPFlag("token_prefix", flags.Lookup("token-prefix"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(newBuildCommand(a))
	cmd.AddCommand(newRoutesCommand(a))
	cmd.AddCommand(newResolveCommand(a))
	cmd.AddCommand(newDumpCommand(a))
	cmd.AddCommand(newCheckCommand(a))

	return cmd
}

// builderOptions returns the options derived from the loaded configuration.
func (a *app) builderOptions() []pathmaker.Option {
	return []pathmaker.Option{
		pathmaker.WithConfig(a.cfg.Builder()),
		pathmaker.WithLogger(a.logger),
	}
}

// loadSite loads the sitemap named by args[0] or the configured one.
func (a *app) loadSite(args []string) (*sitemap.Site, error) {
	path := a.cfg.Sitemap
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errNoSitemap
	}
	return sitemap.LoadFile(path, sitemap.WithLogger(a.logger))
}
