package planet

import (
	"fmt"

	"github.com/cubesphere/planetgrid/internal/profiling"
	"github.com/cubesphere/planetgrid/worldpos"
)

// PlanetDef describes one registered planet.
type PlanetDef struct {
	Name   string
	Center worldpos.WorldPosition
	Radius worldpos.Int128
	Seed   uint64
}

// NewPlanetDef constructs a PlanetDef, panicking if radius is not strictly
// positive — a zero or negative planet radius is a programmer error, not a
// condition this registry tolerates and reports as an error value.
func NewPlanetDef(name string, center worldpos.WorldPosition, radius worldpos.Int128, seed uint64) PlanetDef {
	if radius.Sign() <= 0 {
		panic(fmt.Sprintf("planet: %q has non-positive radius %s", name, radius.String()))
	}
	return PlanetDef{Name: name, Center: center, Radius: radius, Seed: seed}
}

// RegistryErrorKind classifies why Register refused a PlanetDef.
type RegistryErrorKind int

const (
	// DuplicateName means a planet with that name is already registered.
	DuplicateName RegistryErrorKind = iota
	// Overlap means the new planet's sphere intersects an existing one's
	// by strict Euclidean distance (distance between centers < sum of
	// radii).
	Overlap
)

// RegistryError reports why Register refused a PlanetDef.
type RegistryError struct {
	Kind    RegistryErrorKind
	Name    string
	Other   string // name of the conflicting planet, set for Overlap
	Message string
}

func (e *RegistryError) Error() string { return e.Message }

// PlanetRegistry owns a sequence of planets indexed by insertion order
// and by name. It is populated at startup and expected to be read-only
// during steady state; no lock is provided for the same reason
// FaceQuadtree does not provide one (see the concurrency discipline
// note in package quadtree's documentation).
type PlanetRegistry struct {
	byOrder []*PlanetDef
	byName  map[string]*PlanetDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *PlanetRegistry {
	return &PlanetRegistry{byName: make(map[string]*PlanetDef)}
}

// Register adds def to the registry. It refuses a duplicate name or a
// planet whose sphere strictly intersects an already-registered one's.
func (r *PlanetRegistry) Register(def PlanetDef) error {
	defer profiling.Track("planet.Registry.Register")()

	if def.Radius.Sign() <= 0 {
		panic(fmt.Sprintf("planet: %q has non-positive radius %s", def.Name, def.Radius.String()))
	}

	if _, exists := r.byName[def.Name]; exists {
		return &RegistryError{
			Kind:    DuplicateName,
			Name:    def.Name,
			Message: fmt.Sprintf("planet: %q is already registered", def.Name),
		}
	}
	for _, other := range r.byOrder {
		dist := def.Center.DistanceMM(other.Center)
		sumRadii := def.Radius.Add(other.Radius).Float64()
		if dist < sumRadii {
			return &RegistryError{
				Kind:    Overlap,
				Name:    def.Name,
				Other:   other.Name,
				Message: fmt.Sprintf("planet: %q overlaps already-registered %q (distance %.0fmm < sum of radii %.0fmm)", def.Name, other.Name, dist, sumRadii),
			}
		}
	}

	stored := def
	r.byOrder = append(r.byOrder, &stored)
	r.byName[def.Name] = &stored
	return nil
}

// ByName returns the planet registered under name, and whether it exists.
func (r *PlanetRegistry) ByName(name string) (PlanetDef, bool) {
	p, ok := r.byName[name]
	if !ok {
		return PlanetDef{}, false
	}
	return *p, true
}

// ByIndex returns the planet registered i-th (0-based insertion order),
// and whether i is in range.
func (r *PlanetRegistry) ByIndex(i int) (PlanetDef, bool) {
	if i < 0 || i >= len(r.byOrder) {
		return PlanetDef{}, false
	}
	return *r.byOrder[i], true
}

// All returns every registered planet in insertion order.
func (r *PlanetRegistry) All() []PlanetDef {
	out := make([]PlanetDef, len(r.byOrder))
	for i, p := range r.byOrder {
		out[i] = *p
	}
	return out
}

// Len returns the number of registered planets.
func (r *PlanetRegistry) Len() int { return len(r.byOrder) }
