package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agalvezelec/germanSrtAnalysis/internal/annotator"
	"github.com/agalvezelec/germanSrtAnalysis/internal/config"
	"github.com/agalvezelec/germanSrtAnalysis/internal/logger"
	"github.com/agalvezelec/germanSrtAnalysis/internal/pipeline"
	"github.com/agalvezelec/germanSrtAnalysis/internal/watcher"
	"github.com/agalvezelec/germanSrtAnalysis/pkg/executor"
)

const configFile = "config.yaml"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "srtanalysis <file.srt | directory>",
		Short: "Extracts part-of-speech vocabulary reports from German subtitle files",
		Long: `srtanalysis reads a German SRT file, annotates every dialogue block
with spaCy and writes cross-linked HTML and Markdown vocabulary reports
(nouns, verbs, adjectives, adverbs) into an "Analyse" folder next to
the input file.

When the argument is a directory, srtanalysis watches it and analyzes
every newly created .srt file until interrupted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	ann, err := annotator.New(cfg, executor.New(), log)
	if err != nil {
		return fmt.Errorf("set up annotator: %w", err)
	}
	defer ann.Close()

	log.Info(ctx, "Loading annotation model %q...", cfg.Annotator.Model)
	if err := ann.Check(ctx); err != nil {
		return fmt.Errorf("annotation model unavailable: %w", err)
	}

	analyzer := pipeline.New(cfg, ann, log)

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	if info.IsDir() {
		return watch(ctx, cfg, analyzer, target, log)
	}
	return analyzer.Analyze(ctx, target)
}

// watch runs the analyzer for every new .srt file in dir until a
// shutdown signal arrives.
func watch(ctx context.Context, cfg *config.Config, analyzer pipeline.Analyzer, dir string, log logger.Logger) error {
	w, err := watcher.New(dir, analyzer.Analyze, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		// Start drains in-flight analyses before returning; wait for
		// it so none are cut off mid-write.
		<-done
		return nil
	case err := <-errChan:
		return fmt.Errorf("watch %s: %w", dir, err)
	}
}
