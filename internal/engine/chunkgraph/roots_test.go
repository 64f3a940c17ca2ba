package chunkgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

func TestModuleDependencies(t *testing.T) {
	g, _ := newGraph(t,
		jsModule("x", 1, active("y"), inactive("w")),
		jsModule("y", 1, transitive("z")),
		jsModule("z", 1, active("leaf")),
		jsModule("loop", 1, transitive("loop2")),
		jsModule("loop2", 1, transitive("loop"), active("end")),
	)

	assert.Equal(t, ids("y"), g.ModuleDependencies(id("x")))
	assert.Equal(t, ids("leaf"), g.ModuleDependencies(id("y")))
	assert.Equal(t, ids("end"), g.ModuleDependencies(id("loop")))
	assert.Empty(t, g.ModuleDependencies(id("leaf")))
}

func TestChunkRootModules(t *testing.T) {
	tests := []struct {
		name    string
		modules []domain.ModuleSpec
		want    []domain.ModuleIdentifier
	}{
		{
			name: "active chain",
			modules: []domain.ModuleSpec{
				jsModule("x", 1, active("y")),
				jsModule("y", 1, active("z")),
				jsModule("z", 1),
			},
			want: ids("x"),
		},
		{
			name: "transitive edge is skipped",
			modules: []domain.ModuleSpec{
				jsModule("x", 1, active("y")),
				jsModule("y", 1, transitive("z")),
				jsModule("z", 1),
			},
			want: ids("x", "z"),
		},
		{
			name: "transitive edge is expanded",
			modules: []domain.ModuleSpec{
				jsModule("x", 1, transitive("y")),
				jsModule("y", 1, active("z")),
				jsModule("z", 1),
			},
			want: ids("x", "y"),
		},
		{
			name: "inactive edge is ignored",
			modules: []domain.ModuleSpec{
				jsModule("b", 1, inactive("a")),
				jsModule("a", 1),
			},
			want: ids("a", "b"),
		},
		{
			name: "dependencies outside the chunk",
			modules: []domain.ModuleSpec{
				jsModule("x", 1, active("external")),
			},
			want: ids("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			g, store := newGraph(t, tt.modules...)
			c := newChunk(g, store, "main")
			for _, m := range tt.modules {
				g.ConnectChunkAndModule(c, m.ID)
			}

			// Act
			roots := g.ChunkRootModules(c)

			// Assert
			assert.Equal(t, tt.want, roots)
		})
	}
}

func TestChunkRootModules_ClosedCycle(t *testing.T) {
	g, store := newGraph(t, jsModule("a", 1, active("b")), jsModule("b", 1, active("a")))
	c := newChunk(g, store, "main")
	g.ConnectChunkAndModule(c, id("a"))
	g.ConnectChunkAndModule(c, id("b"))

	assert.Empty(t, g.ChunkRootModules(c))
}
