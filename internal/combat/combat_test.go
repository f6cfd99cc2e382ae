package combat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/roll"
)

func newPlayer(t *testing.T, health int) *entity.Player {
	t.Helper()
	p, err := entity.NewPlayer("Hero", health)
	require.NoError(t, err)
	return p
}

func newMonster(t *testing.T, name string, health, damage int) *entity.Monster {
	t.Helper()
	m, err := entity.NewMonster(name, health, damage)
	require.NoError(t, err)
	return m
}

func TestExecuteAttack(t *testing.T) {
	monster := newMonster(t, "Goblin", 50, 5)
	enc := combat.NewEncounter(newPlayer(t, 100), monster, roll.NewScripted())

	enc.ExecuteAttack(25)
	assert.Equal(t, 25, monster.Health())
	assert.False(t, enc.IsDefenderDead())

	enc.ExecuteAttack(25)
	assert.Equal(t, 0, monster.Health())
	assert.True(t, enc.IsDefenderDead())
}

func TestFightPlayerWins(t *testing.T) {
	player := newPlayer(t, 100)
	goblin := newMonster(t, "Goblin", 25, 5)
	// keep, swap, swap
	enc := combat.NewEncounter(player, goblin, roll.NewScripted(2, 1, 1))

	log, err := enc.Fight(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Round 1: Hero attacks Goblin for 10 damage. (Hero: 100 HP, Goblin: 15 HP)",
		"Round 2: Hero attacks Goblin for 10 damage. (Hero: 100 HP, Goblin: 5 HP)",
		"Round 3: Goblin attacks Hero for 5 damage. (Goblin: 5 HP, Hero: 95 HP)",
		"Round 4: Hero attacks Goblin for 10 damage. (Hero: 95 HP, Goblin: 0 HP)",
		"Goblin has been defeated!",
	}, log)
	assert.Equal(t, 4, enc.Rounds())
	assert.Same(t, player, enc.Winner())
	assert.True(t, goblin.IsDead())
	assert.Equal(t, 95, player.Health())
}

func TestFightMonsterWins(t *testing.T) {
	player := newPlayer(t, 10)
	troll := newMonster(t, "Troll", 100, 20)
	enc := combat.NewEncounter(player, troll, roll.NewScripted(1))

	log, err := enc.Fight(context.Background())
	require.NoError(t, err)

	require.Len(t, log, 3)
	assert.Equal(t, "Hero has been defeated!", log[len(log)-1])
	assert.Same(t, troll, enc.Winner())
	assert.Equal(t, 0, player.Health())
	assert.Equal(t, 90, troll.Health())
}

func TestFightAlwaysEndsInDefeat(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		player := newPlayer(t, 100)
		monster := newMonster(t, "Orc", 100, 20)
		enc := combat.NewEncounter(player, monster, roll.NewSeeded(seed))

		log, err := enc.Fight(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, log)

		last := log[len(log)-1]
		assert.True(t, strings.HasSuffix(last, "has been defeated!"), "seed %d: %q", seed, last)
		var loser combat.Combatant = player
		if enc.Winner() == player {
			loser = monster
		}
		assert.True(t, strings.HasPrefix(last, loser.Name()), "seed %d: %q", seed, last)
		assert.GreaterOrEqual(t, player.Health(), 0)
		assert.GreaterOrEqual(t, monster.Health(), 0)
		assert.True(t, player.IsDead() != monster.IsDead(), "exactly one side falls")
	}
}

func TestFightWithDeadCombatantIsEmpty(t *testing.T) {
	player := newPlayer(t, 10)
	goblin := newMonster(t, "Goblin", 5, 5)
	goblin.TakeDamage(5)

	enc := combat.NewEncounter(player, goblin, roll.NewScripted())
	log, err := enc.Fight(context.Background())
	require.NoError(t, err)
	assert.Empty(t, log)
	assert.Same(t, player, enc.Winner())
}

type stub struct {
	name   string
	health int
	power  int
}

func (s *stub) Name() string     { return s.name }
func (s *stub) Health() int      { return s.health }
func (s *stub) IsDead() bool     { return s.health == 0 }
func (s *stub) AttackPower() int { return s.power }
func (s *stub) TakeDamage(amount int) {
	s.health = max(0, s.health-amount)
}

func TestFightRejectsStalemate(t *testing.T) {
	enc := combat.NewEncounter(&stub{name: "A", health: 5}, &stub{name: "B", health: 5}, roll.NewScripted())

	_, err := enc.Fight(context.Background())
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFightSurfacesRollerFailure(t *testing.T) {
	enc := combat.NewEncounter(
		&stub{name: "A", health: 50, power: 1},
		&stub{name: "B", health: 50, power: 1},
		roll.NewScripted(),
	)

	log, err := enc.Fight(context.Background())
	assert.Error(t, err)
	assert.Len(t, log, 1)
}
