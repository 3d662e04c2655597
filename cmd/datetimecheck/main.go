// Command datetimecheck validates "YYYY-MM-DD HH:MM:SS" date-times from the
// command line, from a YAML or JSON file, or over HTTP.
//
// Usage:
//
//	datetimecheck check [-field NAME] VALUE...
//	datetimecheck check [-field NAME] -f FILE
//	datetimecheck serve
//
// check exits with status 1 when any value is rejected and 2 on usage errors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/datetimecheck/pkg/config"
	"github.com/dmitrymomot/datetimecheck/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "datetimecheck: %v\n", err)
		return exitUsage
	}

	log := newLogger(cfg, logger.WithOutput(stderr))

	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "check":
		return runCheck(ctx, log, args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, cfg, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "datetimecheck: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  datetimecheck check [-field NAME] VALUE...
  datetimecheck check [-field NAME] -f FILE
  datetimecheck serve
`)
}
