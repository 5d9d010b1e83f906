package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Harshitk-cp/evidence/internal/buildconfig"
	"github.com/Harshitk-cp/evidence/internal/config"
	"github.com/Harshitk-cp/evidence/internal/fusion"
	"github.com/Harshitk-cp/evidence/internal/report"
	"github.com/Harshitk-cp/evidence/internal/scenario"
	"github.com/Harshitk-cp/evidence/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage:
  fusion fuse <scenario.yaml>      fuse with the scenario's rule (or FUSION_RULE)
  fusion compare <scenario.yaml>   fuse with every rule
  fusion demo zadeh|consensus      run a built-in scenario with every rule
  fusion version`

var errUsage = errors.New(usage)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("fusion failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.LogLevel())
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if config.DevLogging() {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func run(args []string, out io.Writer, logger *zap.Logger) (err error) {
	if len(args) == 0 {
		return errUsage
	}

	if args[0] == "version" {
		_, err := fmt.Fprintln(out, buildconfig.String())
		return err
	}

	w, err := report.NewWriter(out, report.Format(config.OutputFormat()), config.Precision())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	svc := service.NewFusionService(logger)

	switch args[0] {
	case "fuse":
		sc, err := loadArg(args)
		if err != nil {
			return err
		}
		fallback, err := fusion.ParseRule(config.DefaultRule())
		if err != nil {
			return err
		}
		rule, err := sc.RuleOr(fallback)
		if err != nil {
			return err
		}
		res, err := svc.Fuse(rule, sc.DomainSources())
		if err != nil {
			return err
		}
		if err := w.Sources(sc.DomainSources()); err != nil {
			return err
		}
		return w.Result(res)

	case "compare":
		sc, err := loadArg(args)
		if err != nil {
			return err
		}
		return compare(w, svc, sc)

	case "demo":
		if len(args) < 2 {
			return errUsage
		}
		sc, ok := scenario.Demo(args[1])
		if !ok {
			return fmt.Errorf("unknown demo %q (available: %s)", args[1], strings.Join(scenario.DemoNames(), ", "))
		}
		logger.Info("running demo", zap.String("scenario", sc.Name))
		return compare(w, svc, sc)
	}

	return errUsage
}

func loadArg(args []string) (*scenario.Scenario, error) {
	if len(args) < 2 {
		return nil, errUsage
	}
	return scenario.Load(args[1])
}

func compare(w *report.Writer, svc *service.FusionService, sc *scenario.Scenario) error {
	sources := sc.DomainSources()
	if err := w.Sources(sources); err != nil {
		return err
	}
	for _, c := range svc.Compare(sources) {
		if c.Err != nil {
			if errors.Is(c.Err, fusion.ErrInsufficientSources) {
				return c.Err
			}
			if err := w.Failure(string(c.Rule), c.Err); err != nil {
				return err
			}
			continue
		}
		if err := w.Result(c.Result); err != nil {
			return err
		}
	}
	return nil
}
