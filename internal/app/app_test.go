package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/adapters/cas"
	"go.trai.ch/chunkgraph/internal/adapters/hasher"
	"go.trai.ch/chunkgraph/internal/adapters/logger"
	"go.trai.ch/chunkgraph/internal/app"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports/mocks"
	"go.trai.ch/chunkgraph/internal/engine/reporter"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const configPath = "chunkgraph.yaml"

func id(s string) domain.ModuleIdentifier {
	return domain.NewModuleIdentifier(s)
}

func js(name string, size float64, deps ...string) domain.ModuleSpec {
	spec := domain.ModuleSpec{
		ID:    id(name),
		Sizes: map[domain.SourceType]float64{domain.SourceTypeJavaScript: size},
	}
	for _, d := range deps {
		spec.Dependencies = append(spec.Dependencies, domain.Connection{Target: id(d)})
	}
	return spec
}

// bundle describes two entrypoints sharing a vendor module.
func bundle() *domain.Bundle {
	return &domain.Bundle{
		Modules: []domain.ModuleSpec{
			js("./a.js", 40, "./node_modules/lib.js"),
			js("./b.js", 40, "./node_modules/lib.js"),
			js("./node_modules/lib.js", 300),
		},
		Chunks: []domain.ChunkSpec{
			{Name: "a", Runtime: []string{"a"}, Modules: []domain.ModuleIdentifier{id("./node_modules/lib.js")}},
			{Name: "b", Runtime: []string{"b"}, Modules: []domain.ModuleIdentifier{id("./node_modules/lib.js")}},
		},
		ChunkGroups: []domain.ChunkGroupSpec{
			{Name: "a", Kind: domain.ChunkGroupEntrypoint, Chunks: []string{"a"}, Entries: []domain.ModuleIdentifier{id("./a.js")}},
			{Name: "b", Kind: domain.ChunkGroupEntrypoint, Chunks: []string{"b"}, Entries: []domain.ModuleIdentifier{id("./b.js")}},
		},
		Optimization: domain.OptimizationSpec{
			RemoveEmptyChunks: true,
			SplitChunks: domain.SplitChunksSpec{CacheGroups: []domain.CacheGroupSpec{
				{Key: "vendors", Test: "node_modules", Chunks: domain.ChunkFilterAll, MinChunks: 2},
			}},
		},
	}
}

type fixture struct {
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	store  *mocks.MockReportStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		store:  mocks.NewMockReportStore(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) app() *app.App {
	return app.New(f.loader, f.logger, f.store, reporter.New(hasher.New()), nil)
}

func TestApp_Analyze(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(bundle(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(3)

	var stored []domain.ChunkReport
	f.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(reports []domain.ChunkReport) error {
		stored = reports
		return nil
	})

	analysis, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{Parallelism: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.AnalysisStats{SplitChunksCreated: 1}, analysis.Stats)
	require.Len(t, analysis.Chunks, 3)

	a, b, vendors := analysis.Chunks[0], analysis.Chunks[1], analysis.Chunks[2]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, []string{"./a.js"}, a.Modules)
	assert.Equal(t, []string{"./a.js"}, a.RootModules)
	assert.Equal(t, "b", b.ID)
	assert.Equal(t, []string{"./b.js"}, b.Modules)
	assert.Equal(t, "0", vendors.ID)
	assert.Equal(t, []string{"./node_modules/lib.js"}, vendors.Modules)
	assert.Equal(t, []string{"a", "b"}, vendors.Runtime)
	assert.True(t, vendors.Initial)

	for _, r := range analysis.Chunks {
		assert.True(t, r.Changed, "chunk %s has no previous report", r.ID)
		assert.NotEmpty(t, r.Hash)
	}
	assert.Equal(t, analysis.Chunks, stored)
}

func TestApp_Analyze_DryRun(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(bundle(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(3)

	_, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{DryRun: true})
	require.NoError(t, err)
}

func TestApp_Analyze_MarksUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(configPath).Return(bundle(), nil).Times(1)
	loader.EXPECT().Load(configPath).DoAndReturn(func(string) (*domain.Bundle, error) {
		b := bundle()
		b.Modules[0].Sizes[domain.SourceTypeJavaScript] = 41
		return b, nil
	}).Times(1)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	store, err := cas.NewStore(filepath.Join(t.TempDir(), domain.ReportsFileName))
	require.NoError(t, err)
	a := app.New(loader, log, store, reporter.New(hasher.New()), nil)

	_, err = a.Analyze(context.Background(), configPath, app.AnalyzeOptions{})
	require.NoError(t, err)

	analysis, err := a.Analyze(context.Background(), configPath, app.AnalyzeOptions{})
	require.NoError(t, err)

	changed := make(map[string]bool)
	for _, r := range analysis.Chunks {
		changed[r.ID] = r.Changed
	}
	assert.Equal(t, map[string]bool{"a": true, "b": false, "0": false}, changed)
}

func TestApp_Analyze_Telemetry(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	f.loader.EXPECT().Load(configPath).Return(bundle(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	for _, name := range []string{"split-chunks", "remove-empty-chunks", "limit-chunk-count", "chunk-ids", "runtime-requirements", "report"} {
		tel.EXPECT().Record(gomock.Any(), name).Return(context.Background(), vertex)
	}
	tel.EXPECT().Record(gomock.Any(), "freeze", gomock.Any()).Return(context.Background(), vertex)
	vertex.EXPECT().Log(domain.LogLevelInfo, gomock.Any()).Times(6)
	vertex.EXPECT().Complete(nil).Times(7)

	a := app.New(f.loader, f.logger, f.store, reporter.New(hasher.New()), tel)
	_, err := a.Analyze(context.Background(), configPath, app.AnalyzeOptions{})
	require.NoError(t, err)
}

func TestApp_Analyze_Errors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(nil, errors.New("config load error"))

		_, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newFixture(t)
		b := bundle()
		b.Chunks[0].Modules = append(b.Chunks[0].Modules, id("./ghost.js"))
		f.loader.EXPECT().Load(configPath).Return(b, nil)

		_, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrUnknownReference.Error())
	})

	t.Run("store read failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(bundle(), nil)
		f.store.EXPECT().Get(gomock.Any()).Return(nil, errors.New("disk gone"))

		_, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read stored report")
	})

	t.Run("store write failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(bundle(), nil)
		f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
		f.store.EXPECT().Put(gomock.Any()).Return(errors.New("read-only"))

		_, err := f.app().Analyze(context.Background(), configPath, app.AnalyzeOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store reports")
	})

	t.Run("canceled", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(configPath).Return(bundle(), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.app().Analyze(ctx, configPath, app.AnalyzeOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), context.Canceled.Error())
	})
}

func TestApp_Roots(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(bundle(), nil)

	roots, err := f.app().Roots(context.Background(), configPath, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"./a.js"}, roots)
}

func TestApp_Roots_UnknownChunk(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(configPath).Return(bundle(), nil)

	_, err := f.app().Roots(context.Background(), configPath, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrChunkNotFound.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "nope", zErr.Metadata()["chunk"])
}

func TestGuard(t *testing.T) {
	err := app.Guard(func() error {
		panic(zerr.With(domain.ErrChunkNotFound, "chunk", uint32(9)))
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInternalConsistency.Error())
	assert.Contains(t, err.Error(), domain.ErrChunkNotFound.Error())

	assert.NoError(t, app.Guard(func() error { return nil }))
}

func TestApp_Analyze_TagsPassLogs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(configPath).Return(bundle(), nil)
	store := mocks.NewMockReportStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	buf := &bytes.Buffer{}
	log := logger.New()
	log.SetOutput(buf)

	a := app.New(loader, log, store, reporter.New(hasher.New()), nil)
	_, err := a.Analyze(context.Background(), configPath, app.AnalyzeOptions{DryRun: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[split-chunks] split chunks: 1 created, 0 reused\n")
	assert.Contains(t, out, "[chunk-ids] chunk ids: 3 assigned\n")
	assert.NotContains(t, out, "pass=")
}
