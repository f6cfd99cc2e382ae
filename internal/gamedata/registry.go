package gamedata

import (
	"errors"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/samdwyer/dungeoncrawl/internal/roll"
)

// SpeciesRegistry holds the species table and picks from it.
type SpeciesRegistry struct {
	species []SpeciesDef
}

// NewSpeciesRegistry creates a registry from loaded definitions.
func NewSpeciesRegistry(species []SpeciesDef) *SpeciesRegistry {
	return &SpeciesRegistry{species: species}
}

// LoadSpeciesRegistry loads and creates a registry from the embedded monsters.json.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from monsters.json")
	}
	return NewSpeciesRegistry(species), nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *SpeciesRegistry
)

// Species returns the registry built from the embedded table. The table is
// compiled into the binary, so a load failure is a build defect and panics.
func Species() *SpeciesRegistry {
	defaultOnce.Do(func() {
		registry, err := LoadSpeciesRegistry()
		if err != nil {
			panic(err)
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// Pick selects a species uniformly at random.
func (r *SpeciesRegistry) Pick(roller dice.Roller) (*SpeciesDef, error) {
	if len(r.species) == 0 {
		return nil, errors.New("species registry is empty")
	}
	idx, err := roll.Index(roller, len(r.species))
	if err != nil {
		return nil, err
	}
	return &r.species[idx], nil
}

// All returns all species definitions.
func (r *SpeciesRegistry) All() []SpeciesDef {
	return r.species
}
