package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/influence/cascade"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/pathfind"
	"github.com/katalvlaran/influence/seeds"
	"github.com/katalvlaran/influence/spread"
)

// Logger builds a production (json) or development (console) zap logger at
// the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	zc := zap.NewDevelopmentConfig()
	if c.Log.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// Estimator builds a spread estimator from the simulation section.
func (c *Config) Estimator(log *zap.Logger, m *metrics.Metrics) (*spread.Estimator, error) {
	opts := []spread.Option{
		spread.WithSeed(c.Simulation.Seed),
		spread.WithWorkers(c.Simulation.Workers),
		spread.WithLogger(log),
		spread.WithMetrics(m),
	}
	if c.Simulation.IndependentDraws {
		opts = append(opts, spread.WithIndependentDraws())
	}

	return spread.New(opts...)
}

// SelectOptions returns seed-selection options sharing est.
func (c *Config) SelectOptions(est *spread.Estimator, log *zap.Logger, m *metrics.Metrics) ([]seeds.Option, error) {
	alg, err := seeds.ParseAlgorithm(c.Selection.Algorithm)
	if err != nil {
		return nil, err
	}

	return []seeds.Option{
		seeds.WithAlgorithm(alg),
		seeds.WithSimulations(c.Simulation.Runs),
		seeds.WithEstimator(est),
		seeds.WithLogger(log),
		seeds.WithMetrics(m),
	}, nil
}

// PathOptions returns pathfinder options for the path section. The caller
// adds pathfind.WithContent for content mode.
func (c *Config) PathOptions(log *zap.Logger, m *metrics.Metrics) ([]pathfind.Option, error) {
	mode, err := pathfind.ParseMode(c.Path.Mode)
	if err != nil {
		return nil, err
	}
	h, err := pathfind.ParseHeuristic(c.Path.Heuristic)
	if err != nil {
		return nil, err
	}

	return []pathfind.Option{
		pathfind.WithMode(mode),
		pathfind.WithHeuristic(h),
		pathfind.WithLogger(log),
		pathfind.WithMetrics(m),
	}, nil
}

// CascadeOptions returns cascade options for the cascade section, seeded
// from the simulation seed.
func (c *Config) CascadeOptions(log *zap.Logger, m *metrics.Metrics) []cascade.Option {
	return []cascade.Option{
		cascade.WithDays(c.Cascade.Days),
		cascade.WithRecoveryDays(c.Cascade.RecoveryDays),
		cascade.WithSeed(c.Simulation.Seed),
		cascade.WithLogger(log),
		cascade.WithMetrics(m),
	}
}
