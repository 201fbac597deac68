package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeDamageBlockAbsorption(t *testing.T) {
	tests := []struct {
		name    string
		block   int
		amount  int
		vuln    bool
		blocked int
		hpLoss  int
		left    int
	}{
		{"no block", 0, 7, false, 0, 7, 0},
		{"partial block", 3, 10, false, 3, 7, 0},
		{"full block", 10, 4, false, 4, 0, 6},
		{"vulnerable", 0, 10, true, 0, 15, 0},
		{"vulnerable floors", 4, 5, true, 4, 3, 0},
		{"negative amount", 2, -3, false, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCombatant(50)
			c.Block = tt.block
			if tt.vuln {
				c.Status.Apply(StatusVulnerable, 1)
			}
			res := c.TakeDamage(tt.amount)
			assert.Equal(t, tt.blocked, res.Blocked)
			assert.Equal(t, tt.hpLoss, res.HPLoss)
			assert.Equal(t, tt.left, c.Block)
			assert.Equal(t, 50-tt.hpLoss, c.HP)
			assert.Equal(t, res.Amount, res.Blocked+res.HPLoss)
		})
	}
}

func TestHPClamping(t *testing.T) {
	c := newCombatant(20)

	res := c.TakeDamage(35)
	assert.True(t, res.Killed)
	assert.Equal(t, 0, c.HP)
	assert.False(t, c.IsAlive())

	assert.Equal(t, 20, c.Heal(100))
	assert.Equal(t, 20, c.HP)
	assert.Equal(t, 0, c.Heal(5))

	c.Block = 10
	res = c.TakeDirectDamage(8)
	assert.Equal(t, 10, c.Block, "direct damage ignores block")
	assert.Equal(t, 12, c.HP)
	assert.Equal(t, 8, res.HPLoss)

	c.TakeDirectDamage(50)
	assert.Equal(t, 0, c.HP)
}

func TestAddBlockAndStatus(t *testing.T) {
	c := newCombatant(10)
	c.AddBlock(5)
	c.AddBlock(-3)
	c.AddBlock(200)
	assert.Equal(t, 205, c.Block)

	assert.True(t, c.ApplyStatus(StatusBurn, 2))
	assert.False(t, c.ApplyStatus(StatusBurn, 0))
	assert.Equal(t, 2, c.Status.Get(StatusBurn))
}
