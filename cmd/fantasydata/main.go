package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/fantasydata-client/internal/config"
	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
	"github.com/preston-bernstein/fantasydata-client/internal/schema"
	"github.com/preston-bernstein/fantasydata-client/internal/server"
)

const appVersion = "dev"

// Exit codes. A schema mismatch is kept apart from other failures so a
// scheduled check can alert on drift specifically.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 3
)

const usage = `usage: fantasydata <command> [flags]

commands:
  standings SEASON   print the season's standings as JSON
  check SEASON       validate the season's standings shape (exit 3 on mismatch)
  record SEASON      fetch standings from the live service and store them as a fixture
  url SEASON         print the standings URL with the key redacted
  serve              run the HTTP service
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cfg := config.Load()
	if cfg.Metrics.ServiceVersion == "" {
		cfg.Metrics.ServiceVersion = appVersion
	}
	cmd := command{
		cfg: cfg,
		logger: logging.NewLogger(logging.Config{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			Service: cfg.Metrics.ServiceName,
			Version: cfg.Metrics.ServiceVersion,
			Output:  stderr,
		}),
		stdout: stdout,
		stderr: stderr,
	}

	name, rest := args[0], args[1:]
	switch name {
	case "standings":
		return cmd.standings(rest)
	case "check":
		return cmd.check(rest)
	case "record":
		return cmd.record(rest)
	case "url":
		return cmd.url(rest)
	case "serve":
		return cmd.serve(rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", name, usage)
		return exitUsage
	}
}

// seasonArgs parses flags for a subcommand and returns its single SEASON argument.
func (c command) seasonArgs(fs *flag.FlagSet, args []string) (string, bool) {
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		fmt.Fprintf(c.stderr, "%s: expected exactly one SEASON argument (e.g. 2013REG)\n", fs.Name())
		return "", false
	}
	return fs.Arg(0), true
}

func (c command) standings(args []string) int {
	fs := flag.NewFlagSet("standings", flag.ContinueOnError)
	lenient := fs.Bool("lenient", !c.cfg.FantasyData.Strict, "tolerate unknown fields")
	season, ok := c.seasonArgs(fs, args)
	if !ok {
		return exitUsage
	}
	c.cfg.FantasyData.Strict = !*lenient

	standings, err := server.NewClient(c.cfg, c.logger).Standings(context.Background(), season)
	if err != nil {
		return c.fail("standings request failed", err)
	}
	return c.printJSON(standings)
}

func (c command) check(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	teams := fs.Int("teams", c.cfg.FantasyData.ExpectedTeams, "expected number of records (0 skips the count check)")
	season, ok := c.seasonArgs(fs, args)
	if !ok {
		return exitUsage
	}

	report, err := server.NewClient(c.cfg, c.logger).CheckStandings(context.Background(), season, *teams)
	if code := c.printJSON(report); code != exitOK {
		return code
	}
	if err != nil {
		return c.fail("standings check failed", err)
	}
	return exitOK
}

func (c command) record(args []string) int {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	dir := fs.String("dir", c.cfg.Fixtures.RecordDir(), "directory to write recordings into")
	season, ok := c.seasonArgs(fs, args)
	if !ok {
		return exitUsage
	}

	client := fantasydata.NewClient(server.ClientConfig(c.cfg, c.logger))
	ctx := logging.WithLogger(context.Background(), c.logger)
	rec, err := providers.Record(ctx, client, fixtures.NewWriter(*dir), fantasydata.ResourceStandings, season)
	if err != nil {
		return c.fail("recording failed", err)
	}
	fmt.Fprintln(c.stdout, rec.File)
	return exitOK
}

func (c command) url(args []string) int {
	fs := flag.NewFlagSet("url", flag.ContinueOnError)
	season, ok := c.seasonArgs(fs, args)
	if !ok {
		return exitUsage
	}

	req := server.NewClient(c.cfg, c.logger).NewRequest(fantasydata.ResourceStandings, season)
	u, err := req.URL(c.cfg.FantasyData.BaseURL)
	if err != nil {
		return c.fail("invalid request", err)
	}
	fmt.Fprintln(c.stdout, fantasydata.RedactURL(u.String()))
	return exitOK
}

func (c command) serve(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	port := fs.String("port", c.cfg.Port, "listen port")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	c.cfg.Port = *port

	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return exitOK
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(c.cfg, c.logger).Run(ctx, stop)
	return exitOK
}

func (c command) printJSON(v any) int {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return c.fail("encode output", err)
	}
	return exitOK
}

func (c command) fail(msg string, err error) int {
	logging.Error(c.logger, msg, err)
	fmt.Fprintf(c.stderr, "%s: %v\n", msg, err)
	if schema.IsMismatch(err) {
		return exitMismatch
	}
	return exitFailure
}
