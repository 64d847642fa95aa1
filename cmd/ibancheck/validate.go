package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-iban/batch"
	ierrors "github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/metrics"
	"github.com/vortex-fintech/go-iban/piiutil"
)

type validateOptions struct {
	JSON   bool
	Mask   bool
	Inputs []string
}

// validateOutput is one line of --json output.
type validateOutput struct {
	Input      string                 `json:"input"`
	Valid      bool                   `json:"valid"`
	Electronic string                 `json:"electronic,omitempty"`
	Display    string                 `json:"display,omitempty"`
	Country    string                 `json:"country,omitempty"`
	Bank       string                 `json:"bank_identifier,omitempty"`
	Branch     string                 `json:"branch_identifier,omitempty"`
	Error      *ierrors.ErrorResponse `json:"error,omitempty"`
}

func parseValidateArgs(args []string, stderr io.Writer) (validateOptions, error) {
	var opts validateOptions
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.JSON, "json", false, "print one JSON object per input")
	fs.BoolVar(&opts.Mask, "mask", false, "mask account numbers in output")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Inputs = fs.Args()
	return opts, nil
}

func runValidate(ctx context.Context, args []string, e env) int {
	opts, err := parseValidateArgs(args, e.stderr)
	if err != nil {
		return exitUsage
	}
	opts.Mask = opts.Mask || e.cfg.MaskOutput

	inputs := opts.Inputs
	if len(inputs) == 0 {
		inputs, err = readLines(e.stdin)
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: reading stdin: %v\n", err)
			return exitUsage
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(e.stderr, "Error: no IBANs given")
		return exitUsage
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg, "iban")
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return exitUsage
	}
	if e.cfg.MetricsAddr != "" {
		shutdown, err := serveMetrics(e, reg)
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return exitUsage
		}
		defer shutdown()
	}

	v := batch.New(batch.Options{
		Concurrency: e.cfg.Concurrency,
		Logger:      e.log,
		Metrics:     rec,
		Env:         e.cfg.Env,
	})
	results, err := v.Run(ctx, inputs)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return exitUsage
	}

	enc := json.NewEncoder(e.stdout)
	code := exitSuccess
	for _, r := range results {
		if !r.Valid() {
			code = exitInvalid
		}
		out := describeResult(r, opts.Mask)
		if opts.JSON {
			if err := enc.Encode(out); err != nil {
				fmt.Fprintf(e.stderr, "Error: %v\n", err)
				return exitUsage
			}
			continue
		}
		printResult(e.stdout, out)
	}
	return code
}

func describeResult(r batch.Result, mask bool) validateOutput {
	show := func(s string) string {
		if mask {
			return piiutil.MaskIBAN(s)
		}
		return s
	}

	out := validateOutput{Input: show(r.Input), Valid: r.Valid()}
	if !r.Valid() {
		resp := ierrors.FromIBAN("iban", r.Err)
		out.Error = &resp
		return out
	}

	out.Electronic = r.Iban.Electronic()
	out.Display = r.Iban.String()
	if mask {
		out.Electronic = piiutil.MaskIBAN(out.Electronic)
		out.Display = out.Electronic
	}
	out.Country = r.Iban.CountryCode()
	if !mask {
		out.Bank, _ = r.Iban.BankIdentifier()
		out.Branch, _ = r.Iban.BranchIdentifier()
	}
	return out
}

func printResult(w io.Writer, out validateOutput) {
	if out.Valid {
		fmt.Fprintf(w, "OK    %s\n", out.Display)
		return
	}
	fmt.Fprintf(w, "FAIL  %s: %s\n", out.Input, out.Error.Reason)
}

// readLines returns the non-blank lines of r. Line endings are stripped,
// other whitespace is kept so paper-format spacing is validated as given.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func serveMetrics(e env, reg *prometheus.Registry) (func(), error) {
	h, _, err := metrics.New(metrics.Options{Registry: reg})
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", e.cfg.MetricsAddr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}

	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.log.Errorw("metrics server stopped", "error", err)
		}
	}()
	e.log.Infow("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			e.log.Warnw("metrics server shutdown", "error", err)
		}
	}, nil
}
