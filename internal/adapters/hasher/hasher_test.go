package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/adapters/hasher"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

func sampleReport() domain.ChunkReport {
	return domain.ChunkReport{
		ID:                  "main",
		Name:                "main",
		Runtime:             []string{"main"},
		Initial:             true,
		Modules:             []string{"./a.js", "./b.js"},
		EntryModules:        []string{"./a.js"},
		RootModules:         []string{"./a.js"},
		RuntimeModules:      []string{"webpack/runtime/load_script"},
		Sizes:               map[domain.SourceType]float64{domain.SourceTypeJavaScript: 120, domain.SourceTypeCSS: 30},
		Size:                10150,
		RuntimeRequirements: []string{"__webpack_require__"},
		InitialChunks:       map[string]bool{"main": true, "1": false},
	}
}

func TestHasher_ComputeChunkHash_Deterministic(t *testing.T) {
	h := hasher.New()
	a := sampleReport()
	b := sampleReport()

	hashA, err := h.ComputeChunkHash(&a)
	require.NoError(t, err)
	hashB, err := h.ComputeChunkHash(&b)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 16)
}

func TestHasher_ComputeChunkHash_IgnoresHashAndChanged(t *testing.T) {
	h := hasher.New()
	a := sampleReport()
	b := sampleReport()
	b.Hash = "0123456789abcdef"
	b.Changed = true

	hashA, err := h.ComputeChunkHash(&a)
	require.NoError(t, err)
	hashB, err := h.ComputeChunkHash(&b)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
}

func TestHasher_ComputeChunkHash_SensitiveToContent(t *testing.T) {
	base := sampleReport()
	h := hasher.New()
	baseHash, err := h.ComputeChunkHash(&base)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(r *domain.ChunkReport)
	}{
		{"id", func(r *domain.ChunkReport) { r.ID = "other" }},
		{"modules", func(r *domain.ChunkReport) { r.Modules = append(r.Modules, "./c.js") }},
		{"module boundary", func(r *domain.ChunkReport) { r.Modules = []string{"./a.js./b.js"} }},
		{"initial", func(r *domain.ChunkReport) { r.Initial = false }},
		{"size", func(r *domain.ChunkReport) { r.Size = 10151 }},
		{"source size", func(r *domain.ChunkReport) { r.Sizes[domain.SourceTypeCSS] = 31 }},
		{"full hash", func(r *domain.ChunkReport) { r.FullHash = true }},
		{"condition map", func(r *domain.ChunkReport) { r.InitialChunks["1"] = true }},
		{"runtime requirements", func(r *domain.ChunkReport) { r.RuntimeRequirements = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleReport()
			tt.mutate(&r)
			got, err := h.ComputeChunkHash(&r)
			require.NoError(t, err)
			assert.NotEqual(t, baseHash, got)
		})
	}
}
