package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/porglezomp/libgoscore/batch"
	"github.com/porglezomp/libgoscore/config"
	"github.com/porglezomp/libgoscore/position"
	"github.com/porglezomp/libgoscore/scoring"
)

var (
	GitVersion string
)

//go:embed goscore.txt
var goscorebanner string

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("goscore failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	komi, err := cfg.Komi()
	if err != nil {
		return err
	}
	quiet := cfg.GetBool(config.ConfigQuiet)

	if len(cfg.Args()) == 0 {
		if !quiet {
			fmt.Fprintln(out, goscorebanner)
			if GitVersion != "" {
				fmt.Fprintln(out, GitVersion)
			}
		}
		return runDemo(position.Demo(komi), quiet, out)
	}

	positions, err := position.LoadAll(cfg.Args(), komi)
	if err != nil {
		return err
	}
	scorer := batch.NewScorer(cfg.GetInt(config.ConfigWorkers))
	log.Info().Int("positions", len(positions)).Int("workers", scorer.Workers()).Msg("scoring")

	outcomes, err := scorer.ScoreAll(ctx, positions)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		fmt.Fprintf(out, "%s: %s\n", o.Position.Name, o.Result)
		if !quiet {
			fmt.Fprintln(out, o.Scored.ToDisplayText())
			fmt.Fprintln(out, o.Result.Details())
			fmt.Fprintln(out)
		}
	}
	if len(outcomes) > 1 {
		sum := batch.Summarize(outcomes)
		fmt.Fprintln(out, sum)
		if bins := cfg.GetInt(config.ConfigHistogram); bins > 0 {
			if err := sum.FprintHistogram(out, bins, 40); err != nil {
				return err
			}
		}
	}
	hits, misses := scorer.CacheStats()
	log.Debug().Int("hits", hits).Int("misses", misses).Msg("cache")
	return nil
}

// runDemo scores p in place, showing the board after each stage.
func runDemo(p *position.Position, quiet bool, out io.Writer) error {
	b := p.Board
	if !quiet {
		fmt.Fprintln(out, "Start:")
		fmt.Fprintln(out, b.ToDisplayText())
	}

	dead := scoring.GuessDeadStones(b)
	if !quiet {
		fmt.Fprintf(out, "Dead stones (%d newly marked):\n", dead)
		fmt.Fprintln(out, b.ToDisplayText())
	}

	scoring.ScoreStones(b)
	if !quiet {
		fmt.Fprintln(out, "Scored:")
		fmt.Fprintln(out, b.ToDisplayText())
	}

	r := scoring.ScoreSums(b, p.Komi)
	if !quiet {
		fmt.Fprintln(out, r.Details())
	}
	fmt.Fprintf(out, "%s: %s\n", p.Name, r)
	return nil
}
