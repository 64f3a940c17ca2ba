package modulegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/modulegraph"
)

func TestStatic(t *testing.T) {
	a := domain.NewModuleIdentifier("a")
	b := domain.NewModuleIdentifier("b")

	g, err := modulegraph.New([]domain.ModuleSpec{
		{
			ID:    b,
			Sizes: map[domain.SourceType]float64{domain.SourceTypeJavaScript: 10, domain.SourceTypeCSS: 5},
		},
		{
			ID:                  a,
			SourceTypes:         []domain.SourceType{domain.SourceTypeJavaScript},
			Sizes:               map[domain.SourceType]float64{domain.SourceTypeJavaScript: 3},
			Dependencies:        []domain.Connection{{Target: b, State: domain.ConnectionActive}},
			RuntimeRequirements: domain.RuntimeRequire,
		},
	})
	require.NoError(t, err)

	assert.True(t, g.HasModule(a))
	assert.False(t, g.HasModule(domain.NewModuleIdentifier("c")))
	assert.Equal(t, []domain.ModuleIdentifier{a, b}, g.Modules())
	assert.Equal(t, []domain.SourceType{domain.SourceTypeCSS, domain.SourceTypeJavaScript}, g.SourceTypes(b))
	assert.InDelta(t, 5.0, g.Size(b, domain.SourceTypeCSS), 0)
	assert.Zero(t, g.Size(a, domain.SourceTypeCSS))
	assert.Equal(t, []domain.Connection{{Target: b, State: domain.ConnectionActive}}, g.OutgoingConnections(a))
	assert.Equal(t, domain.RuntimeRequire, g.RuntimeRequirements(a))
	assert.Empty(t, g.SourceTypes(domain.NewModuleIdentifier("c")))
}

func TestStatic_Duplicate(t *testing.T) {
	a := domain.NewModuleIdentifier("a")
	_, err := modulegraph.New([]domain.ModuleSpec{{ID: a}, {ID: a}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateName.Error())
}
