package splitchunks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/engine/splitchunks"
	"go.trai.ch/zerr"
)

func id(s string) domain.ModuleIdentifier {
	return domain.NewModuleIdentifier(s)
}

func testSizes() splitchunks.ModuleSizes {
	return splitchunks.ModuleSizes{
		id("a.js"):      {domain.SourceTypeJavaScript: 0.1},
		id("b.js"):      {domain.SourceTypeJavaScript: 0.2},
		id("style.css"): {domain.SourceTypeCSS: 30, domain.SourceTypeJavaScript: 0.3},
		id("logo.svg"):  {domain.SourceTypeAsset: 5},
	}
}

func newGroup(index int, priority float64) *splitchunks.ModuleGroup {
	return splitchunks.NewModuleGroup(index, "", &splitchunks.CacheGroup{Priority: priority})
}

func TestModuleGroup_AddRemoveRestoresSizes(t *testing.T) {
	sizes := testSizes()
	g := newGroup(0, 0)
	g.AddModule(id("a.js"), sizes)
	g.AddModule(id("b.js"), sizes)
	before := map[domain.SourceType]float64{}
	for k, v := range g.Sizes {
		before[k] = v
	}

	g.AddModule(id("style.css"), sizes)
	g.RemoveModule(id("style.css"), sizes)

	assert.InDelta(t, before[domain.SourceTypeJavaScript], g.Sizes[domain.SourceTypeJavaScript], 1e-9)
	assert.InDelta(t, 0, g.Sizes[domain.SourceTypeCSS], 1e-9)
	assert.False(t, g.HasModule(id("style.css")))
	assert.Empty(t, g.SourceTypesModules([]domain.SourceType{domain.SourceTypeCSS}, sizes))
	assert.NotContains(t, g.SourceTypesModules([]domain.SourceType{domain.SourceTypeJavaScript}, sizes), id("style.css"))
}

func TestModuleGroup_Idempotent(t *testing.T) {
	sizes := testSizes()
	g := newGroup(0, 0)

	g.AddModule(id("style.css"), sizes)
	g.AddModule(id("style.css"), sizes)
	assert.Equal(t, 1, g.NumberOfModules())
	assert.InDelta(t, 30, g.Sizes[domain.SourceTypeCSS], 1e-9)

	g.RemoveModule(id("style.css"), sizes)
	g.RemoveModule(id("style.css"), sizes)
	g.RemoveModule(id("a.js"), sizes)
	assert.Zero(t, g.NumberOfModules())
	assert.InDelta(t, 0, g.Sizes[domain.SourceTypeCSS], 1e-9)
}

func TestModuleGroup_RemoveClampsAtZero(t *testing.T) {
	sizes := testSizes()
	g := newGroup(0, 0)
	g.AddModule(id("a.js"), sizes)
	g.AddModule(id("b.js"), sizes)
	g.AddModule(id("style.css"), sizes)

	g.RemoveModule(id("a.js"), sizes)
	g.RemoveModule(id("style.css"), sizes)
	g.RemoveModule(id("b.js"), sizes)

	assert.GreaterOrEqual(t, g.Sizes[domain.SourceTypeJavaScript], 0.0)
	assert.InDelta(t, 0, g.Sizes[domain.SourceTypeJavaScript], 1e-9)
}

func TestModuleGroup_SourceTypesModules(t *testing.T) {
	sizes := testSizes()
	g := newGroup(0, 0)
	for _, m := range []string{"a.js", "style.css", "logo.svg"} {
		g.AddModule(id(m), sizes)
	}

	single := g.SourceTypesModules([]domain.SourceType{domain.SourceTypeCSS}, sizes)
	assert.Equal(t, domain.NewModuleIdentifierSet(id("style.css")), single)

	multi := g.SourceTypesModules([]domain.SourceType{domain.SourceTypeCSS, domain.SourceTypeAsset}, sizes)
	assert.Equal(t, domain.NewModuleIdentifierSet(id("style.css"), id("logo.svg")), multi)

	assert.Empty(t, g.SourceTypesModules([]domain.SourceType{domain.SourceTypeWasm}, sizes))

	// The returned set is a copy.
	single.Add(id("other"))
	assert.Len(t, g.SourceTypesModules([]domain.SourceType{domain.SourceTypeCSS}, sizes), 1)
}

func TestModuleGroup_MissingSizePanics(t *testing.T) {
	g := newGroup(0, 0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*zerr.Error)
		require.True(t, ok)
		assert.Contains(t, err.Error(), domain.ErrSizeMissing.Error())
		assert.Equal(t, "ghost.js", err.Metadata()["module"])
	}()

	g.AddModule(id("ghost.js"), testSizes())
}

func TestModuleGroup_CacheGroup(t *testing.T) {
	groups := []splitchunks.CacheGroup{{Key: "default"}, {Key: "vendors", Priority: -10}}
	g := splitchunks.NewModuleGroup(1, "", &groups[1])

	assert.Equal(t, 1, g.CacheGroupIndex)
	assert.Same(t, &groups[1], g.CacheGroup(groups))
	assert.InDelta(t, -10, g.Priority, 0)
}
