// Package main implements cycle-demo, a walkthrough of the circular buffer
// container: it builds a container from a scenario, prints it forwards and
// backwards, and answers a few generic algorithm queries over its iterators.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MegaBluejay/cpplabs/metric"
	"github.com/MegaBluejay/cpplabs/pkg/alloc"
	"github.com/MegaBluejay/cpplabs/pkg/cycle"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "cycle-demo"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cliCfg, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, Version)
		return nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp(stdout, cliCfg.flags)
		return nil
	}

	logger := setupLogger(stderr, cliCfg.LogLevel, cliCfg.LogFormat)

	scenario, err := loadScenario(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}
	if cliCfg.Validate {
		logger.Info("Scenario is valid", "config_path", cliCfg.ConfigPath)
		return nil
	}

	registry := metric.NewMetricsRegistry()

	if cliCfg.MetricsPort < 0 {
		return runScenario(scenario, registry, logger, stdout)
	}
	return runWithMetrics(ctx, cliCfg, scenario, registry, logger, stdout)
}

// runWithMetrics serves the registry while the scenario runs, then keeps
// serving until the linger period ends or ctx is cancelled.
func runWithMetrics(
	ctx context.Context,
	cliCfg *CLIConfig,
	scenario *Scenario,
	registry *metric.MetricsRegistry,
	logger *slog.Logger,
	stdout io.Writer,
) error {
	server := metric.NewServer(cliCfg.MetricsPort, "/metrics", registry)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Metrics server shutdown failed", "error", err)
			}
		}()

		select {
		case <-server.Ready():
		case <-gctx.Done():
			return nil
		}
		logger.Info("Serving metrics", "address", server.Address())

		if err := runScenario(scenario, registry, logger, stdout); err != nil {
			return err
		}
		return linger(gctx, cliCfg.Linger, logger)
	})

	return g.Wait()
}

func linger(ctx context.Context, d time.Duration, logger *slog.Logger) error {
	if d == 0 {
		logger.Info("Scenario complete, serving metrics until interrupted")
		<-ctx.Done()
		return nil
	}

	logger.Info("Scenario complete, serving metrics", "linger", d)
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return nil
}

// runScenario builds the container and writes the report to w.
func runScenario(s *Scenario, registry *metric.MetricsRegistry, logger *slog.Logger, w io.Writer) error {
	options := []cycle.Option[int]{
		cycle.WithLogger[int](logger),
		cycle.WithMetrics[int](registry, "demo"),
	}
	if s.SlotLimit > 0 {
		options = append(options, cycle.WithAllocator[int](alloc.NewLimited[int](nil, s.SlotLimit)))
	}

	c, err := cycle.NewFromSlice(s.Initial, options...)
	if err != nil {
		return fmt.Errorf("create container: %w", err)
	}
	defer c.Release()

	if _, err := c.InsertSlice(c.CBegin(), s.FrontInsert); err != nil {
		return fmt.Errorf("front insert: %w", err)
	}
	for _, v := range s.PushBack {
		if err := c.PushBack(v); err != nil {
			return fmt.Errorf("push back %d: %w", v, err)
		}
	}

	writeReport(w, c, s)

	logger.Info("Scenario finished",
		"size", c.Len(),
		"capacity", c.Cap(),
		"stats", c.Stats().Summary())
	return nil
}

func writeReport(w io.Writer, c *cycle.Cycle[int], s *Scenario) {
	var forward, backward []string
	for _, v := range c.All() {
		forward = append(forward, fmt.Sprint(v))
	}
	for _, v := range c.Backward() {
		backward = append(backward, fmt.Sprint(v))
	}
	_, _ = fmt.Fprintln(w, strings.Join(forward, " "))
	_, _ = fmt.Fprintln(w, strings.Join(backward, " "))

	first, last := c.CBegin(), c.CEnd()

	even := allOf(first, last, func(x int) bool { return x%2 == 0 })
	_, _ = fmt.Fprintf(w, "all even: %t\n", even)

	if it := find(first, last, s.Find); it.Less(last) && it.Next().Less(last) {
		_, _ = fmt.Fprintf(w, "after %d: %d\n", s.Find, it.Next().Get())
	} else {
		_, _ = fmt.Fprintf(w, "after %d: none\n", s.Find)
	}

	if it := adjacentFind(first, last); it.Less(last) {
		_, _ = fmt.Fprintf(w, "first repeated: %d\n", it.Get())
	} else {
		_, _ = fmt.Fprintln(w, "first repeated: none")
	}

	if it := maxElement(first, last); it.Less(last) {
		_, _ = fmt.Fprintf(w, "max index: %d\n", it.Diff(first))
	}

	_, _ = fmt.Fprintf(w, "contains %d: %t\n", s.Search, binarySearch(first, last, s.Search))
}
