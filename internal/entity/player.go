package entity

import (
	"encoding/json"
	"slices"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// Defaults applied when a saved player record omits a field.
const (
	DefaultPlayerName   = "Hero"
	DefaultPlayerHealth = 25
)

// Player is the adventurer controlled from the console.
type Player struct {
	vitals
	maxHealth int
	score     int
	weapon    Weapon
	inventory []Weapon
	position  Position
}

// NewPlayer creates a player at the entrance wielding Fist. The starting
// health becomes the healing ceiling.
func NewPlayer(name string, health int) (*Player, error) {
	v, err := newVitals(name, health, CharacterPlayer)
	if err != nil {
		return nil, err
	}
	return &Player{
		vitals:    v,
		maxHealth: health,
		weapon:    Fist,
		inventory: []Weapon{Fist},
	}, nil
}

// MaxHealth returns the healing ceiling.
func (p *Player) MaxHealth() int { return p.maxHealth }

// Score returns the collected treasure total.
func (p *Player) Score() int { return p.score }

// Weapon returns the wielded weapon.
func (p *Player) Weapon() Weapon { return p.weapon }

// Inventory returns a copy of the carried weapons. The wielded weapon is always included.
func (p *Player) Inventory() []Weapon { return slices.Clone(p.inventory) }

// Position returns the current grid position.
func (p *Player) Position() Position { return p.position }

// AttackPower returns the wielded weapon's damage.
func (p *Player) AttackPower() int { return p.weapon.Damage() }

// Move places the player at an absolute position and returns it.
func (p *Player) Move(to Position) Position {
	p.position = to
	return p.position
}

// ForecastedMove returns where a move by (dx, dy) would land without moving.
func (p *Player) ForecastedMove(dx, dy int) Position {
	return p.position.Offset(dx, dy)
}

// AddTreasure adds amount to the score. Negative amounts are ignored.
func (p *Player) AddTreasure(amount int) {
	if amount > 0 {
		p.score += amount
	}
}

// Heal restores health up to the ceiling and returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.health >= p.maxHealth {
		return 0
	}
	before := p.health
	p.health = min(p.health+amount, p.maxHealth)
	return p.health - before
}

var _ combat.Combatant = (*Player)(nil)
var _ Character = (*Player)(nil)

// PlayerData is the serialized form of a Player.
type PlayerData struct {
	HP        int          `json:"hp"`
	MaxHP     int          `json:"maxHp,omitempty"`
	Score     int          `json:"score"`
	X         int          `json:"x"`
	Y         int          `json:"y"`
	Inventory []WeaponData `json:"inventory"`
	Name      string       `json:"name"`
	Weapon    WeaponData   `json:"weapon"`
}

// DefaultPlayerData is the record substituted for missing fields.
func DefaultPlayerData() PlayerData {
	return PlayerData{
		HP:     DefaultPlayerHealth,
		Name:   DefaultPlayerName,
		Weapon: Fist.ToData(),
	}
}

// UnmarshalJSON fills omitted fields with the defaults.
func (d *PlayerData) UnmarshalJSON(b []byte) error {
	type plain PlayerData
	p := plain(DefaultPlayerData())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = PlayerData(p)
	return nil
}

// ToData converts the player to its serialized form.
func (p *Player) ToData() PlayerData {
	inv := make([]WeaponData, 0, len(p.inventory))
	for _, w := range p.inventory {
		inv = append(inv, w.ToData())
	}
	return PlayerData{
		HP:        p.health,
		MaxHP:     p.maxHealth,
		Score:     p.score,
		X:         p.position.X,
		Y:         p.position.Y,
		Inventory: inv,
		Name:      p.name,
		Weapon:    p.weapon.ToData(),
	}
}

// PlayerFromData rebuilds a fresh player from its serialized form.
func PlayerFromData(d PlayerData) (*Player, error) {
	if d.Name == "" {
		d.Name = DefaultPlayerName
	}
	p, err := NewPlayer(d.Name, d.HP)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid player record")
	}
	if d.MaxHP > p.maxHealth {
		p.maxHealth = d.MaxHP
	}
	if d.Score > 0 {
		p.score = d.Score
	}
	p.position = Position{X: d.X, Y: d.Y}
	p.weapon = WeaponFromData(d.Weapon)

	p.inventory = make([]Weapon, 0, len(d.Inventory)+1)
	for _, wd := range d.Inventory {
		p.inventory = append(p.inventory, WeaponFromData(wd))
	}
	if !slices.Contains(p.inventory, p.weapon) {
		p.inventory = append(p.inventory, p.weapon)
	}
	return p, nil
}
