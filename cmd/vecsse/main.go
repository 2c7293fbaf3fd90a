// SPDX-License-Identifier: MIT

// Command vecsse runs batch workloads of typed vector and matrix arithmetic.
//
//	vecsse run [-config file] [-workers n] [-progress] <workload.json|workload.json.zst|->
//	vecsse kernels
//	vecsse pack <workload.json> <workload.json.zst>
//	vecsse sample-config <path>
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/vecsse/config"
	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/kernels"
	"github.com/katalvlaran/vecsse/logger"
	"github.com/katalvlaran/vecsse/workload"
)

const usage = `usage: vecsse run [-config file] [-workers n] [-progress] <workload.json|workload.json.zst|->
       vecsse kernels
       vecsse pack <workload.json> <workload.json.zst>
       vecsse sample-config <path>`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(stderr, usage)
		return 1
	}

	var err error
	switch args[0] {
	case "run":
		err = runWorkload(ctx, args[1:], stdout, stderr)
	case "kernels":
		err = listKernels(stdout)
	case "pack":
		err = pack(args[1:])
	case "sample-config":
		if len(args) != 2 {
			err = fmt.Errorf("sample-config: expected one path")
			break
		}
		err = config.CreateSample(args[1])
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "vecsse: %v\n", err)
		return 1
	}
	return 0
}

func runWorkload(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "JSON config file (see sample-config).")
		workers    = fs.Int("workers", 0, "Concurrent jobs; overrides the config when > 0.")
		progress   = fs.Bool("progress", false, "Show a progress bar; overrides the config.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run: expected one workload path")
	}

	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *progress {
		cfg.Progress = true
	}

	log, err := logger.New(cfg.LogLevel.Zap())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	file, err := workload.Load(fs.Arg(0))
	if err != nil {
		log.Error("load workload", zap.String("path", fs.Arg(0)), zap.Error(err))
		return err
	}
	log.Info("running workload",
		zap.Int("jobs", len(file.Jobs)),
		zap.Int("workers", cfg.GetWorkers()),
		zap.Stringer("default_kind", cfg.GetDefaultKind()))

	results, runErr := workload.Run(ctx, file,
		workload.WithWorkers(cfg.GetWorkers()),
		workload.WithProgress(cfg.Progress),
		workload.WithDefaultKind(cfg.GetDefaultKind()),
		workload.WithLogger(log))
	for _, r := range results {
		_, _ = fmt.Fprintf(stdout, "# %s (%s)\n", r.Name, r.Op)
		if r.Err != nil {
			_, _ = fmt.Fprintf(stdout, "error: %v\n", r.Err)
			continue
		}
		_, _ = fmt.Fprint(stdout, r.Output)
		if !strings.HasSuffix(r.Output, "\n") {
			_, _ = fmt.Fprintln(stdout)
		}
	}
	if runErr != nil {
		log.Error("workload failed", zap.Error(runErr))
	}
	return runErr
}

func listKernels(stdout io.Writer) error {
	for _, p := range dispatch.Default().Pairs() {
		if _, err := fmt.Fprintf(stdout, "%-16s %s\n", p[0], p[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(stdout, kernels.Describe())
	return err
}

func pack(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("pack: expected input and output paths")
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	if _, err = workload.Parse(raw); err != nil {
		return fmt.Errorf("pack: %w", err)
	}
	if workload.IsCompressed(raw) {
		return os.WriteFile(args[1], raw, 0600)
	}
	return os.WriteFile(args[1], workload.Compress(raw), 0600)
}
