// Package reporter turns a frozen chunk graph into per-chunk reports.
package reporter

import (
	"context"
	"runtime"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/chunkgraph/internal/engine/chunkgraph"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures a report run.
type Options struct {
	// Parallelism bounds the number of concurrent workers. Zero uses the number of CPUs.
	Parallelism int
	Sizes       chunkgraph.ChunkSizeOptions
}

// Reporter builds chunk reports from a snapshot.
type Reporter struct {
	hasher ports.Hasher
}

// New creates a Reporter hashing reports with hasher.
func New(hasher ports.Hasher) *Reporter {
	return &Reporter{hasher: hasher}
}

// Report builds one report per chunk of snap, ordered like snap.Chunks().
func (r *Reporter) Report(ctx context.Context, snap *chunkgraph.Snapshot, opts Options) ([]domain.ChunkReport, error) {
	chunks := snap.Chunks()
	reports := make([]domain.ChunkReport, len(chunks))

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range chunks {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = zerr.With(domain.InternalError(rec), "chunk", uint32(c))
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}

			report := chunkReport(snap, c, opts.Sizes)
			hash, err := r.hasher.ComputeChunkHash(&report)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to hash chunk report"), "chunk_id", report.ID)
			}
			report.Hash = hash
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func chunkReport(snap *chunkgraph.Snapshot, c domain.ChunkKey, sizes chunkgraph.ChunkSizeOptions) domain.ChunkReport {
	store := snap.Store()
	chunk := store.ExpectChunk(c)

	report := domain.ChunkReport{
		ID:                  snap.ExpectChunkID(c),
		Name:                chunk.Name,
		Runtime:             []string(chunk.Runtime),
		Initial:             store.CanBeInitial(c),
		Modules:             identifiers(snap.OrderedChunkModules(c)),
		EntryModules:        identifiers(snap.ChunkEntryModules(c)),
		RootModules:         identifiers(snap.ChunkRootModules(c)),
		Sizes:               snap.ChunkModulesSizes(c),
		Size:                snap.ChunkSize(c, sizes),
		FullHash:            snap.HasChunkFullHashModules(c),
		DependentHash:       snap.HasChunkDependentHashModules(c),
		RuntimeRequirements: snap.ChunkRuntimeRequirements(c).Names(),
		InitialChunks:       snap.ChunkConditionMap(c, store.CanBeInitial),
	}
	for _, rm := range snap.ChunkRuntimeModulesInOrder(c) {
		report.RuntimeModules = append(report.RuntimeModules, rm.Identifier().String())
	}
	return report
}

func identifiers(ids []domain.ModuleIdentifier) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
