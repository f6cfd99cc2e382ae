// Package entity provides the player, monsters and the items they carry.
package entity

import (
	"github.com/samdwyer/dungeoncrawl/internal/errors"
)

// CharacterType tags the character variant.
type CharacterType string

const (
	CharacterPlayer  CharacterType = "player"
	CharacterMonster CharacterType = "monster"
)

// Character is the capability set shared by the player and monsters.
type Character interface {
	Name() string
	Health() int
	Type() CharacterType
	IsDead() bool
	TakeDamage(amount int)
	AttackPower() int
}

// vitals holds the health state common to every character.
type vitals struct {
	name   string
	health int
	kind   CharacterType
}

func newVitals(name string, health int, kind CharacterType) (vitals, error) {
	if health <= 0 {
		return vitals{}, errors.InvalidArgumentf("%s %q must start with positive health, got %d", kind, name, health).
			WithMeta("health", health)
	}
	return vitals{name: name, health: health, kind: kind}, nil
}

// Name returns the character's name.
func (v *vitals) Name() string { return v.name }

// Health returns current health.
func (v *vitals) Health() int { return v.health }

// Type returns the character variant.
func (v *vitals) Type() CharacterType { return v.kind }

// IsDead reports whether health has reached zero.
func (v *vitals) IsDead() bool { return v.health == 0 }

// TakeDamage lowers health by amount, never below zero. Negative amounts are ignored.
func (v *vitals) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	v.health -= amount
	if v.health < 0 {
		v.health = 0
	}
}
