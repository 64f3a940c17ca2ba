// Package app implements the application layer for chunkgraph.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/chunkgraph/internal/adapters/telemetry"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
	"go.trai.ch/chunkgraph/internal/engine/compilation"
	"go.trai.ch/chunkgraph/internal/engine/optimize"
	"go.trai.ch/chunkgraph/internal/engine/reporter"
	"go.trai.ch/chunkgraph/internal/engine/splitchunks"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.ReportStore
	reporter     *reporter.Reporter
	telemetry    ports.Telemetry
}

// New creates a new App instance. A nil telemetry records nothing.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.ReportStore,
	rep *reporter.Reporter,
	tel ports.Telemetry,
) *App {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		reporter:     rep,
		telemetry:    tel,
	}
}

// AnalyzeOptions configuration for the Analyze method.
type AnalyzeOptions struct {
	// Parallelism bounds the report workers. Zero uses the number of CPUs.
	Parallelism int
	// DryRun skips persisting the reports.
	DryRun bool
}

// Analyze loads the bundle description at configPath, optimizes its chunk graph and reports
// every resulting chunk. Reports whose hash differs from the stored report are marked changed.
func (a *App) Analyze(ctx context.Context, configPath string, opts AnalyzeOptions) (*domain.Analysis, error) {
	comp, err := a.load(configPath)
	if err != nil {
		return nil, err
	}

	snap, stats, err := a.optimize(ctx, comp)
	if err != nil {
		return nil, err
	}

	var reports []domain.ChunkReport
	err = a.pass(ctx, "report", func(v ports.Vertex) error {
		reports, err = a.reporter.Report(ctx, snap, reporter.Options{
			Parallelism: opts.Parallelism,
			Sizes:       comp.SizeOptions(),
		})
		if err != nil {
			return err
		}
		v.Log(domain.LogLevelInfo, fmt.Sprintf("reported %d chunks", len(reports)))
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to report chunks")
	}

	if err := a.markChanged(reports); err != nil {
		return nil, err
	}
	if !opts.DryRun {
		if err := a.store.Put(reports); err != nil {
			return nil, zerr.Wrap(err, "failed to store reports")
		}
	}

	return &domain.Analysis{Chunks: reports, Stats: stats}, nil
}

// Roots returns the root modules of the named chunk after optimization.
func (a *App) Roots(ctx context.Context, configPath, chunkName string) ([]string, error) {
	comp, err := a.load(configPath)
	if err != nil {
		return nil, err
	}

	snap, _, err := a.optimize(ctx, comp)
	if err != nil {
		return nil, err
	}

	chunk, ok := snap.Store().ChunkByName(chunkName)
	if !ok {
		return nil, zerr.With(domain.ErrChunkNotFound, "chunk", chunkName)
	}

	var roots []string
	err = guard(func() error {
		for _, m := range snap.ChunkRootModules(chunk.Key()) {
			roots = append(roots, m.String())
		}
		return nil
	})
	return roots, err
}

func (a *App) load(configPath string) (*compilation.Compilation, error) {
	bundle, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	comp, err := compilation.Build(bundle)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid bundle description")
	}
	a.logger.Debug(fmt.Sprintf("loaded %d modules and %d chunks", len(bundle.Modules), len(bundle.Chunks)))
	return comp, nil
}

// optimize runs every optimization pass on comp and freezes its chunk graph.
func (a *App) optimize(ctx context.Context, comp *compilation.Compilation) (*chunkgraph.Snapshot, domain.AnalysisStats, error) {
	var stats domain.AnalysisStats
	g := comp.Graph

	passes := []struct {
		name string
		run  func() string
	}{
		{"split-chunks", func() string {
			res := splitchunks.Run(g, comp.CacheGroups)
			stats.SplitChunksCreated, stats.SplitChunksReused = res.Created, res.Reused
			return fmt.Sprintf("split chunks: %d created, %d reused", res.Created, res.Reused)
		}},
		{"remove-empty-chunks", func() string {
			if !comp.Optimization.RemoveEmptyChunks {
				return "remove empty chunks: disabled"
			}
			stats.EmptyChunksRemoved = optimize.RemoveEmptyChunks(g)
			return fmt.Sprintf("remove empty chunks: %d removed", stats.EmptyChunksRemoved)
		}},
		{"limit-chunk-count", func() string {
			stats.ChunksMerged = optimize.LimitChunkCount(g, comp.Optimization.MaxChunks, comp.SizeOptions())
			return fmt.Sprintf("limit chunk count: %d merged", stats.ChunksMerged)
		}},
		{"chunk-ids", func() string {
			return fmt.Sprintf("chunk ids: %d assigned", optimize.AssignChunkIDs(g))
		}},
		{"runtime-requirements", func() string {
			optimize.ComputeRuntimeRequirements(g)
			return fmt.Sprintf("runtime requirements: %d chunks", len(g.Chunks()))
		}},
	}

	for _, p := range passes {
		err := a.pass(ctx, p.name, func(v ports.Vertex) error {
			msg := p.run()
			v.Log(domain.LogLevelInfo, msg)
			a.logPass(p.name, msg)
			return nil
		})
		if err != nil {
			return nil, stats, zerr.With(err, "pass", p.name)
		}
	}

	var snap *chunkgraph.Snapshot
	err := a.pass(ctx, "freeze", func(_ ports.Vertex) error {
		snap = g.Freeze()
		return nil
	}, ports.WithInternal())
	return snap, stats, err
}

// pass runs fn inside a telemetry vertex. Panics raised by the chunk graph are converted
// into errors.
func (a *App) pass(ctx context.Context, name string, fn func(v ports.Vertex) error, opts ...ports.VertexOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, v := a.telemetry.Record(ctx, name, opts...)
	err := guard(func() error { return fn(v) })
	v.Complete(err)
	return err
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.InternalError(r)
		}
	}()
	return fn()
}

func (a *App) markChanged(reports []domain.ChunkReport) error {
	for i := range reports {
		prev, err := a.store.Get(reports[i].ID)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read stored report"), "chunk_id", reports[i].ID)
		}
		reports[i].Changed = prev == nil || prev.Hash != reports[i].Hash
	}
	return nil
}

type passLogger interface {
	Pass(name, summary string)
}

// logPass reports a pass summary, tagged with the pass name when the logger supports it.
func (a *App) logPass(name, summary string) {
	if pl, ok := a.logger.(passLogger); ok {
		pl.Pass(name, summary)
		return
	}
	a.logger.Info(summary)
}

type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

// SetLogLevel changes the verbosity of the logger if it supports levels.
func (a *App) SetLogLevel(level domain.LogLevel) {
	if ls, ok := a.logger.(levelSetter); ok {
		ls.SetLevel(level)
	}
}
