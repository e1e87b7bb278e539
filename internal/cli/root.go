package cli

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/stacksift/internal/config"
)

// CLI is the root command structure for stacksift
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,json,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-report output"`
	Verbose bool   `short:"v" help:"Show debug output (format detection, parse fallbacks)"`

	// Commands
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Full analysis: parse, cluster, and trend error logs"`
	Cluster ClusterCmd `cmd:"" help:"Cluster errors by similarity only"`
	Trend   TrendCmd   `cmd:"" help:"Bucket errors into time windows only"`
	Formats FormatsCmd `cmd:"" help:"List supported stack-trace formats"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock
}

// NewGlobals creates a new Globals instance from CLI flags, with config
// fallbacks for flags that weren't explicitly set. The logger is injected
// here rather than configured at package load.
func NewGlobals(cli *CLI, cfg *config.Config, logger *zap.Logger) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Logger:  logger,
		Clock:   clock.New(),
	}

	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	return g
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "text" {
		io.WriteString(globals.Stdout, "stacksift version "+Version+" ("+Commit+")\n")
	} else {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
