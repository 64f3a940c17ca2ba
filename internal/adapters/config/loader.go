// Package config provides the bundle description loader for chunkgraph.
package config

import (
	"fmt"
	"os"

	"go.trai.ch/chunkgraph/internal/core/domain"
	"go.trai.ch/chunkgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only schema version the loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the bundle description at path and converts it into a domain.Bundle.
// Enum values are validated here; references between entities are validated when the
// compilation is built.
func (l *Loader) Load(path string) (*domain.Bundle, error) {
	var file Bundlefile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	switch file.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn(fmt.Sprintf("no version declared in %s, assuming %q", path, SupportedVersion))
	default:
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", file.Version)
	}

	b := &domain.Bundle{}
	var err error
	if b.Modules, err = convertModules(file.Modules); err != nil {
		return nil, err
	}
	if b.RuntimeModules, err = convertRuntimeModules(file.RuntimeModules); err != nil {
		return nil, err
	}
	b.Chunks = convertChunks(file.Chunks)
	if b.ChunkGroups, err = convertChunkGroups(file.ChunkGroups); err != nil {
		return nil, err
	}
	if b.Optimization, err = convertOptimization(file.Optimization); err != nil {
		return nil, err
	}

	if len(b.ChunkGroups) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no chunk groups", path))
	}
	return b, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// invalid decorates an enum parse error with the offending field and value.
func invalid(err error, field, value string) error {
	return zerr.With(zerr.With(err, "field", field), "value", value)
}

func convertModules(dtos []ModuleDTO) ([]domain.ModuleSpec, error) {
	out := make([]domain.ModuleSpec, 0, len(dtos))
	for i, dto := range dtos {
		prefix := fmt.Sprintf("modules[%d]", i)
		spec := domain.ModuleSpec{
			ID:    domain.NewModuleIdentifier(dto.ID),
			Sizes: make(map[domain.SourceType]float64, len(dto.Sizes)),
		}

		for _, s := range dto.SourceTypes {
			st, err := domain.ParseSourceType(s)
			if err != nil {
				return nil, invalid(err, prefix+".sourceTypes", s)
			}
			spec.SourceTypes = append(spec.SourceTypes, st)
		}
		for s, size := range dto.Sizes {
			st, err := domain.ParseSourceType(s)
			if err != nil {
				return nil, invalid(err, prefix+".sizes", s)
			}
			if size < 0 {
				return nil, invalid(domain.ErrInvalidValue, prefix+".sizes."+s, fmt.Sprint(size))
			}
			spec.Sizes[st] = size
		}
		for j, dep := range dto.Dependencies {
			state, err := domain.ParseConnectionState(dep.State)
			if err != nil {
				return nil, invalid(err, fmt.Sprintf("%s.dependencies[%d].state", prefix, j), dep.State)
			}
			spec.Dependencies = append(spec.Dependencies, domain.Connection{
				Target: domain.NewModuleIdentifier(dep.Module),
				State:  state,
			})
		}
		req, err := convertRuntimeGlobals(dto.RuntimeRequirements, prefix+".runtimeRequirements")
		if err != nil {
			return nil, err
		}
		spec.RuntimeRequirements = req

		out = append(out, spec)
	}
	return out, nil
}

func convertRuntimeGlobals(names []string, field string) (domain.RuntimeGlobals, error) {
	var req domain.RuntimeGlobals
	for _, name := range names {
		g, err := domain.ParseRuntimeGlobal(name)
		if err != nil {
			return 0, invalid(err, field, name)
		}
		req |= g
	}
	return req, nil
}

func convertRuntimeModules(dtos []RuntimeModuleDTO) ([]domain.RuntimeModuleSpec, error) {
	out := make([]domain.RuntimeModuleSpec, 0, len(dtos))
	for i, dto := range dtos {
		stage, err := domain.ParseRuntimeModuleStage(dto.Stage)
		if err != nil {
			return nil, invalid(err, fmt.Sprintf("runtimeModules[%d].stage", i), dto.Stage)
		}
		out = append(out, domain.RuntimeModuleSpec{
			Name:          dto.Name,
			Stage:         stage,
			FullHash:      dto.FullHash,
			DependentHash: dto.DependentHash,
			Isolate:       dto.Isolate,
			Source:        dto.Source,
			Chunks:        dto.Chunks,
		})
	}
	return out, nil
}

func convertChunks(dtos []ChunkDTO) []domain.ChunkSpec {
	out := make([]domain.ChunkSpec, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, domain.ChunkSpec{
			Name:               dto.Name,
			Runtime:            dto.Runtime,
			Modules:            identifiers(dto.Modules),
			IDHints:            dto.IDHints,
			PreventIntegration: dto.PreventIntegration,
		})
	}
	return out
}

func convertChunkGroups(dtos []ChunkGroupDTO) ([]domain.ChunkGroupSpec, error) {
	out := make([]domain.ChunkGroupSpec, 0, len(dtos))
	for i, dto := range dtos {
		kind, err := domain.ParseChunkGroupKind(dto.Kind)
		if err != nil {
			return nil, invalid(err, fmt.Sprintf("chunkGroups[%d].kind", i), dto.Kind)
		}
		out = append(out, domain.ChunkGroupSpec{
			Name:         dto.Name,
			Kind:         kind,
			Chunks:       dto.Chunks,
			Parents:      dto.Parents,
			Entries:      identifiers(dto.Entries),
			RuntimeChunk: dto.RuntimeChunk,
		})
	}
	return out, nil
}

func convertOptimization(dto OptimizationDTO) (domain.OptimizationSpec, error) {
	opt := domain.OptimizationSpec{
		ChunkOverhead:           dto.ChunkOverhead,
		EntryChunkMultiplicator: dto.EntryChunkMultiplicator,
		MaxChunks:               dto.MaxChunks,
		RemoveEmptyChunks:       dto.RemoveEmptyChunks == nil || *dto.RemoveEmptyChunks,
	}
	if dto.MaxChunks < 0 {
		return opt, invalid(domain.ErrInvalidValue, "optimization.maxChunks", fmt.Sprint(dto.MaxChunks))
	}

	for i, cg := range dto.SplitChunks.CacheGroups {
		prefix := fmt.Sprintf("optimization.splitChunks.cacheGroups[%d]", i)
		filter, err := domain.ParseChunkFilter(cg.Chunks)
		if err != nil {
			return opt, invalid(err, prefix+".chunks", cg.Chunks)
		}
		spec := domain.CacheGroupSpec{
			Key:                cg.Key,
			Name:               cg.Name,
			Test:               cg.Test,
			Chunks:             filter,
			MinChunks:          cg.MinChunks,
			Priority:           cg.Priority,
			ReuseExistingChunk: cg.ReuseExistingChunk,
			IDHint:             cg.IDHint,
		}
		for _, s := range cg.Type {
			st, err := domain.ParseSourceType(s)
			if err != nil {
				return opt, invalid(err, prefix+".type", s)
			}
			spec.Types = append(spec.Types, st)
		}
		if len(cg.MinSize) > 0 {
			spec.MinSize = make(map[domain.SourceType]float64, len(cg.MinSize))
			for s, size := range cg.MinSize {
				st, err := domain.ParseSourceType(s)
				if err != nil {
					return opt, invalid(err, prefix+".minSize", s)
				}
				spec.MinSize[st] = size
			}
		}
		opt.SplitChunks.CacheGroups = append(opt.SplitChunks.CacheGroups, spec)
	}
	return opt, nil
}

func identifiers(ids []string) []domain.ModuleIdentifier {
	if len(ids) == 0 {
		return nil
	}
	out := make([]domain.ModuleIdentifier, len(ids))
	for i, id := range ids {
		out[i] = domain.NewModuleIdentifier(id)
	}
	return out
}
