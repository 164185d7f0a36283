package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/feed"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/i18n"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/inbox"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/infra/config"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/infra/geo"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/infra/logger"
	"github.com/Nguyen-Van-Truong/fe-hoan-hao/tui"
)

var (
	version = "dev"
	commit  = "none"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: pinksocial [--version|-v] [--help|-h]\n\n" + config.Usage()
}

// versionString fills unset ldflags values from the embedded build info.
func versionString(info *debug.BuildInfo) string {
	v, c := version, commit
	if info != nil {
		if mv := strings.TrimSpace(info.Main.Version); v == "dev" && mv != "" && mv != "(devel)" {
			v = mv
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && c == "none" && s.Value != "" {
				c = s.Value[:min(len(s.Value), 12)]
			}
		}
	}
	return fmt.Sprintf("PinkSocial %s (commit %s)", v, c)
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		info, _ := debug.ReadBuildInfo()
		fmt.Println(versionString(info))
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pinksocial: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	out, closeLog := openLog(cfg.LogPath)
	defer closeLog()
	log := logger.New(logger.Opts{Console: cfg.IsDevelopment(), Level: cfg.LogLevel, Output: out})
	log.Info("starting", "version", version, "env", cfg.Env)

	w, err := wire(ctx, cfg, log)
	if err != nil {
		return err
	}
	// Cancels a page load that is still waiting when the UI exits.
	defer w.trigger.Close()

	p := tea.NewProgram(tui.NewApp(w.deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("interrupted")
			return nil
		}
		return err
	}
	log.Info("bye")
	return nil
}

// openLog falls back to discarding logs when the file cannot be opened.
func openLog(path string) (io.Writer, func()) {
	f, err := logger.OpenFile(path)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

type wiring struct {
	deps      tui.Deps
	trigger   *feed.Trigger
	localizer *i18n.Localizer
}

func wire(ctx context.Context, cfg config.Config, log *slog.Logger) (wiring, error) {
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		return wiring{}, fmt.Errorf("loading translations: %w", err)
	}

	posts := feed.NewStore(feed.Options{
		PageSize:  cfg.PageSize,
		PageDelay: cfg.PageDelay,
		Logger:    log,
	})
	trigger := feed.NewTrigger(ctx, posts, log)
	messages := inbox.NewStore(inbox.SeedData(time.Now()), nil, log)

	loc := i18n.NewLocalizer(catalog, config.PrefsFile{Path: cfg.PrefsPath}, log)
	if lang, ok := cfg.ForcedLanguage(); ok {
		if err := loc.SetLanguage(lang); err != nil {
			log.Warn("forced language not saved", "error", err)
		}
	}
	// Show a stored language on the first frame; detection runs from Init.
	loc.Restore()

	detector := geo.NewDetector(geo.NewClient(cfg.GeoURL, cfg.GeoTimeout), geo.LocalZone, log)

	return wiring{
		deps: tui.Deps{
			Feed:      posts,
			Pager:     trigger,
			Inbox:     messages,
			Localizer: loc,
			Resolver:  i18n.Resolver{Localizer: loc, Detector: detector},
			Author:    feed.CurrentAuthor,
			Self:      inbox.CurrentUser,
			Context:   ctx,
			Log:       log,
		},
		trigger:   trigger,
		localizer: loc,
	}, nil
}
