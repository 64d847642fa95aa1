// ibancheck validates IBANs and describes the country registry.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/vortex-fintech/go-iban/config"
	"github.com/vortex-fintech/go-iban/logger"
)

const (
	exitSuccess = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	log, err := logger.New("ibancheck", cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], env{
		cfg:    cfg,
		log:    log,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	stop()
	log.SafeSync()
	os.Exit(code)
}

// env is everything a command needs from the process.
type env struct {
	cfg    config.Config
	log    logger.LoggerInterface
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, e env) int {
	if len(args) < 1 {
		printUsage(e.stderr)
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "validate":
		return runValidate(ctx, rest, e)
	case "country":
		return runCountry(rest, e)
	case "countries":
		return runCountries(rest, e)
	case "help", "-h", "--help":
		printUsage(e.stdout)
		return exitSuccess
	default:
		fmt.Fprintf(e.stderr, "Unknown command: %s\n", cmd)
		printUsage(e.stderr)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `ibancheck - IBAN validation tool

Usage:
  ibancheck <command> [options] [arguments]

Commands:
  validate [--json] [--mask] [IBAN...]   Validate IBANs given as arguments, or one per line on stdin
  country [--json] <CC>                  Show the registry entry for a country
  countries                              List the countries in the registry
  help                                   Show this help message

Environment:
  IBANCHECK_ENV            development, debug or production (default production)
  IBANCHECK_CONCURRENCY    workers used by validate (default 8)
  IBANCHECK_METRICS_ADDR   serve /metrics and /health on this address while running
  IBANCHECK_MASK_OUTPUT    mask account numbers in output (default false)

Exit codes:
  0  all inputs valid
  1  at least one input invalid
  2  usage or configuration error`)
}
