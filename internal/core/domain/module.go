package domain

import "go.trai.ch/zerr"

// SourceType is a kind of generated output a module contributes to a chunk.
type SourceType string

const (
	// SourceTypeJavaScript is JavaScript output.
	SourceTypeJavaScript SourceType = "javascript"
	// SourceTypeCSS is stylesheet output.
	SourceTypeCSS SourceType = "css"
	// SourceTypeAsset is emitted asset output.
	SourceTypeAsset SourceType = "asset"
	// SourceTypeWasm is WebAssembly output.
	SourceTypeWasm SourceType = "wasm"
	// SourceTypeRuntime is output of synthetic runtime modules.
	SourceTypeRuntime SourceType = "runtime"
	// SourceTypeUnknown is used for modules with no known output.
	SourceTypeUnknown SourceType = "unknown"
)

// ParseSourceType converts s into a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	switch t := SourceType(s); t {
	case SourceTypeJavaScript, SourceTypeCSS, SourceTypeAsset, SourceTypeWasm, SourceTypeRuntime, SourceTypeUnknown:
		return t, nil
	default:
		return "", zerr.With(ErrUnknownSourceType, "source_type", s)
	}
}

// SourceTypeSet is an unordered set of source types.
type SourceTypeSet map[SourceType]struct{}

// NewSourceTypeSet returns a set holding types.
func NewSourceTypeSet(types ...SourceType) SourceTypeSet {
	s := make(SourceTypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set.
func (s SourceTypeSet) Has(t SourceType) bool {
	_, ok := s[t]
	return ok
}

// ConnectionState is the activity state of a dependency connection between two modules.
type ConnectionState uint8

const (
	// ConnectionActive connections contribute their target module directly.
	ConnectionActive ConnectionState = iota
	// ConnectionInactive connections are ignored.
	ConnectionInactive
	// ConnectionTransitiveOnly connections pass through to the target's own connections.
	ConnectionTransitiveOnly
)

// String returns the configuration spelling of the state.
func (s ConnectionState) String() string {
	switch s {
	case ConnectionActive:
		return "active"
	case ConnectionInactive:
		return "inactive"
	case ConnectionTransitiveOnly:
		return "transitive"
	default:
		return "unknown"
	}
}

// ParseConnectionState converts s into a ConnectionState. An empty string means active.
func ParseConnectionState(s string) (ConnectionState, error) {
	switch s {
	case "", "active":
		return ConnectionActive, nil
	case "inactive":
		return ConnectionInactive, nil
	case "transitive", "transitive-only":
		return ConnectionTransitiveOnly, nil
	default:
		return 0, zerr.With(ErrUnknownConnectionState, "state", s)
	}
}

// Connection is an outgoing dependency edge of a module.
type Connection struct {
	Target ModuleIdentifier
	State  ConnectionState
}
