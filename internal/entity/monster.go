package entity

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
)

// Defaults applied when a saved monster record omits a field.
const (
	DefaultMonsterName   = "Goblin"
	DefaultMonsterHealth = 50
	DefaultMonsterDamage = 5
)

// Monster is a hostile character with a fixed attack stat.
type Monster struct {
	vitals
	damage int
}

// NewMonster creates a monster. Health and damage must both be positive.
func NewMonster(name string, health, damage int) (*Monster, error) {
	v, err := newVitals(name, health, CharacterMonster)
	if err != nil {
		return nil, err
	}
	if damage <= 0 {
		return nil, errors.InvalidArgumentf("monster %q must deal positive damage, got %d", name, damage)
	}
	return &Monster{vitals: v, damage: damage}, nil
}

// RandomMonster picks a species uniformly and scales it by difficulty.
func RandomMonster(difficulty int, roller dice.Roller) (*Monster, error) {
	if difficulty < 1 {
		return nil, errors.InvalidArgumentf("difficulty must be at least 1, got %d", difficulty)
	}
	species, err := gamedata.Species().Pick(roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick monster species")
	}
	return NewMonster(species.Name, species.Health(difficulty), species.Damage(difficulty))
}

// Damage returns the monster's attack stat.
func (m *Monster) Damage() int { return m.damage }

// AttackPower returns the damage the monster deals per hit.
func (m *Monster) AttackPower() int { return m.damage }

var _ combat.Combatant = (*Monster)(nil)
var _ Character = (*Monster)(nil)

// MonsterData is the serialized form of a Monster.
type MonsterData struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Type   string `json:"type"`
	Damage int    `json:"damage"`
}

// DefaultMonsterData is the record substituted for missing fields.
func DefaultMonsterData() MonsterData {
	return MonsterData{
		Name:   DefaultMonsterName,
		Health: DefaultMonsterHealth,
		Type:   string(CharacterMonster),
		Damage: DefaultMonsterDamage,
	}
}

// UnmarshalJSON fills omitted fields with the defaults.
func (d *MonsterData) UnmarshalJSON(b []byte) error {
	type plain MonsterData
	p := plain(DefaultMonsterData())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = MonsterData(p)
	return nil
}

// ToData converts the monster to its serialized form.
func (m *Monster) ToData() MonsterData {
	return MonsterData{
		Name:   m.name,
		Health: m.health,
		Type:   string(m.kind),
		Damage: m.damage,
	}
}

// MonsterFromData rebuilds a fresh monster from its serialized form. A blank
// record yields the default Goblin.
func MonsterFromData(d MonsterData) (*Monster, error) {
	if d == (MonsterData{}) {
		d = DefaultMonsterData()
	}
	m, err := NewMonster(d.Name, d.Health, d.Damage)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid monster record")
	}
	return m, nil
}
