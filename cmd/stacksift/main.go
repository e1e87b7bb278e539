package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/vburojevic/stacksift/internal/cli"
	"github.com/vburojevic/stacksift/internal/config"
)

const quickStart = `stacksift - error log clustering and trend analysis

START HERE (this is the command you want):
  stacksift analyze app.log

Other useful commands:
  stacksift cluster app.log             Cluster similar errors only
  stacksift trend app.log               Time-bucketed error counts only
  stacksift formats                     List supported stack-trace formats
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":      cfg.Format,
		"config_threshold":   fmt.Sprintf("%g", cfg.Defaults.Threshold),
		"config_frame_limit": fmt.Sprintf("%d", cfg.Defaults.FrameLimit),
		"config_window":      cfg.Defaults.Window,
		"config_since":       cfg.Defaults.Since,
		"config_workers":     fmt.Sprintf("%d", cfg.Defaults.Workers),
		"config_format_hint": cfg.Defaults.FormatHint,
	}

	ctx := kong.Parse(&c,
		kong.Name("stacksift"),
		kong.Description("Cluster crash and error logs by similarity and chart their trends\n\nSTART HERE: stacksift analyze <file>"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	// Logger is built once here and injected; nothing configures logging at
	// package load.
	logger := zap.NewNop()
	if c.Verbose && !c.Quiet {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer logger.Sync()

	globals := cli.NewGlobals(&c, cfg, logger)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
