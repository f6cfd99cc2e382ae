// Package combat resolves one-on-one fights between two combatants.
package combat

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// Combatant is anything that can trade blows. The player and monsters both
// implement it; the fight loop never inspects the concrete type.
type Combatant interface {
	Name() string
	Health() int
	IsDead() bool
	TakeDamage(amount int)
	AttackPower() int
}

// Encounter is a fight between two combatants. The first attacker strikes
// first; after every round the defender survives, a coin flip decides
// whether the roles swap.
type Encounter struct {
	attacker Combatant
	defender Combatant
	roller   dice.Roller
	rounds   int
}

// NewEncounter creates an encounter with attacker striking first.
func NewEncounter(attacker, defender Combatant, roller dice.Roller) *Encounter {
	return &Encounter{
		attacker: attacker,
		defender: defender,
		roller:   roller,
	}
}

// Rounds returns how many blows have been traded.
func (e *Encounter) Rounds() int { return e.rounds }

// ExecuteAttack applies damage to the current defender.
func (e *Encounter) ExecuteAttack(damage int) {
	e.defender.TakeDamage(damage)
}

// IsDefenderDead reports whether the current defender has fallen.
func (e *Encounter) IsDefenderDead() bool {
	return e.defender.IsDead()
}

// Winner returns the surviving combatant once the fight is over, or nil.
func (e *Encounter) Winner() Combatant {
	switch {
	case e.attacker.IsDead() && !e.defender.IsDead():
		return e.defender
	case e.defender.IsDead() && !e.attacker.IsDead():
		return e.attacker
	default:
		return nil
	}
}

// Fight trades blows until one side falls and returns the round log. The
// last line always names the defeated combatant. Only the two combatants'
// health is mutated.
func (e *Encounter) Fight(ctx context.Context) ([]string, error) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.fight")
	defer span.End()

	if e.attacker.AttackPower() <= 0 && e.defender.AttackPower() <= 0 {
		return nil, errors.InvalidArgumentf("neither %s nor %s can deal damage", e.attacker.Name(), e.defender.Name())
	}

	var log []string
	for !e.attacker.IsDead() && !e.defender.IsDead() {
		e.rounds++
		damage := e.attacker.AttackPower()
		e.ExecuteAttack(damage)
		log = append(log, fmt.Sprintf("Round %d: %s attacks %s for %d damage. (%s: %d HP, %s: %d HP)",
			e.rounds, e.attacker.Name(), e.defender.Name(), damage,
			e.attacker.Name(), e.attacker.Health(), e.defender.Name(), e.defender.Health()))

		if e.IsDefenderDead() {
			log = append(log, fmt.Sprintf("%s has been defeated!", e.defender.Name()))
			break
		}

		swap, err := roll.CoinFlip(e.roller)
		if err != nil {
			return log, errors.Wrap(err, "failed to decide turn order")
		}
		if swap {
			e.attacker, e.defender = e.defender, e.attacker
		}
	}

	if w := e.Winner(); w != nil {
		span.SetAttributes(attribute.String("winner", w.Name()))
	}
	span.SetAttributes(attribute.Int("rounds", e.rounds))
	return log, nil
}
