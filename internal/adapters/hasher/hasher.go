// Package hasher computes content hashes of chunk reports.
package hasher

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

// Hasher implements ports.Hasher using xxHash.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// ComputeChunkHash hashes every content-bearing field of report. The hash itself and the
// change marker are excluded.
func (h *Hasher) ComputeChunkHash(report *domain.ChunkReport) (string, error) {
	d := xxhash.New()

	writeString(d, report.ID)
	writeString(d, report.Name)
	writeList(d, report.Runtime)
	writeBool(d, report.Initial)
	writeList(d, report.Modules)
	writeList(d, report.EntryModules)
	writeList(d, report.RootModules)
	writeList(d, report.RuntimeModules)

	for _, st := range slices.Sorted(maps.Keys(report.Sizes)) {
		writeString(d, string(st))
		writeFloat(d, report.Sizes[st])
	}
	_, _ = d.Write([]byte{0})

	writeFloat(d, report.Size)
	writeBool(d, report.FullHash)
	writeBool(d, report.DependentHash)
	writeList(d, report.RuntimeRequirements)

	for _, id := range slices.Sorted(maps.Keys(report.InitialChunks)) {
		writeString(d, id)
		writeBool(d, report.InitialChunks[id])
	}
	_, _ = d.Write([]byte{0})

	return fmt.Sprintf("%016x", d.Sum64()), nil
}

func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0}) // Separator
}

func writeList(d *xxhash.Digest, items []string) {
	for _, item := range items {
		writeString(d, item)
	}
	_, _ = d.Write([]byte{0}) // Section separator
}

func writeBool(d *xxhash.Digest, b bool) {
	if b {
		_, _ = d.Write([]byte{1})
		return
	}
	_, _ = d.Write([]byte{0})
}

func writeFloat(d *xxhash.Digest, f float64) {
	writeString(d, strconv.FormatFloat(f, 'g', -1, 64))
}
