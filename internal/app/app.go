package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/foodwagen/internal/config"
	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/logging"
	"github.com/five82/foodwagen/internal/prefs"
	"github.com/five82/foodwagen/internal/storefront"
	"github.com/five82/foodwagen/internal/ui"
)

// Options configure the foodwagen application. Non-empty fields override
// the config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/foodwagen/prefs.toml
	APIBase    string
	LogLevel   string
}

// Run boots the storefront TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer logging.Sync(rt.log)

	rt.log.Infow("foodwagen starting", "api", rt.ui.APIBase, "theme", rt.ui.ThemeName)
	err = ui.Run(rt.ui)
	rt.log.Infow("foodwagen stopped", "error", err)
	return err
}

type deps struct {
	cfg config.Config
	log *zap.SugaredLogger
	ui  ui.Options
}

// setup loads configuration and builds every dependency the UI needs.
func setup(ctx context.Context, opts Options) (deps, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return deps{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return deps{}, fmt.Errorf("init logger: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warnw("load preferences failed, using defaults", "error", err)
		userPrefs = prefs.Default()
	}

	client, err := foodapi.NewClient(cfg.APIBase, foodapi.WithLogger(log.Named("api")))
	if err != nil {
		logging.Sync(log)
		return deps{}, fmt.Errorf("init food api client: %w", err)
	}

	ctrl := storefront.New(client, log.Named("storefront"))

	return deps{
		cfg: cfg,
		log: log,
		ui: ui.Options{
			Context:    ctx,
			Controller: ctrl,
			Logger:     log.Named("ui"),
			ThemeName:  userPrefs.Theme,
			Compact:    userPrefs.Compact,
			PrefsPath:  opts.PrefsPath,
			APIBase:    client.BaseURL(),
			LogFile:    cfg.LogFile,
		},
	}, nil
}
