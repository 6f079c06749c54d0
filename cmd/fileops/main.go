package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	_ "github.com/keshon/fileops/internal/command/hexview"
	_ "github.com/keshon/fileops/internal/command/list"
	_ "github.com/keshon/fileops/internal/command/mirror"
	_ "github.com/keshon/fileops/internal/command/remove"
	_ "github.com/keshon/fileops/internal/command/selectdir"
	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/logging"
	"github.com/keshon/fileops/internal/menu"
	"github.com/keshon/fileops/internal/session"
	"github.com/keshon/fileops/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	dir        string
	tui        bool
	logLevel   string
	logOutput  string
	noColor    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fl := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fl.SetOutput(stderr)
	fl.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fl.StringVar(&o.dir, "dir", "", "directory to select on startup")
	fl.BoolVar(&o.tui, "tui", false, "run the full-screen interface")
	fl.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVar(&o.logOutput, "log-output", "", "log output: none, stdout, stderr or a file path")
	fl.BoolVar(&o.noColor, "no-color", false, "disable styled output")
	if err := fl.Parse(args); err != nil {
		return nil, err
	}
	return &o, nil
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dir != "" {
		cfg.StartDir = o.dir
	}
	if o.tui {
		cfg.UI.Mode = config.ModeTUI
	}
	if o.noColor {
		cfg.UI.Color = false
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logOutput != "" {
		cfg.Log.Output = o.logOutput
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer log.Sync()

	con := console.New(stdin, stdout, console.WithColor(cfg.UI.Color))
	ctx := &command.Context{
		Session: session.New(),
		FS:      fs.NewOSFS(),
		Console: con,
		Log:     log,
		Config:  cfg,
	}
	log.Debug("starting", zap.String("mode", cfg.UI.Mode), zap.String("start_dir", cfg.StartDir))

	if cfg.StartDir != "" {
		dir, err := fileops.SelectDirectory(ctx.FS, ctx.Session, cfg.StartDir)
		if err != nil {
			con.Failure(fileops.Describe(err))
		} else {
			con.Success("Directory selected: " + dir)
		}
	}

	if cfg.UI.Mode == config.ModeTUI {
		if err := tui.Run(ctx, tea.WithInput(stdin), tea.WithOutput(stdout)); err != nil {
			log.Error("tui failed", zap.Error(err))
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		con.Println("Exiting...")
		return 0
	}
	return menu.New(ctx).Run()
}
