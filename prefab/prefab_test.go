package prefab

import (
	"math/rand/v2"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcinKacperek/space-ships/asset"
	"github.com/MarcinKacperek/space-ships/config"
	"github.com/MarcinKacperek/space-ships/engine"
)

const droneYAML = `
sprite: 1
speed_min: 100
speed_max: 150
width: 30
height: 20
health: 2
`

const gunshipYAML = `
sprite: 3
speed_min: 80
speed_max: 80
width: 50
height: 40
health: 3
points: 7
attack_cooldown: 1.5
cannons:
  - x_offset: -10
    y_offset: -20
    missile_width: 4
    missile_height: 10
    missile_speed: 300
    missile_sprite: 6
  - x_offset: 10
    y_offset: -20
    missile_width: 4
    missile_height: 10
    missile_speed: 300
    missile_sprite: 6
`

func TestDecodeDerivesTierAndKind(t *testing.T) {
	a, err := Decode(strings.NewReader(droneYAML), "sm_drone.yaml")
	require.NoError(t, err)
	assert.Equal(t, "sm_drone", a.Name)
	assert.Equal(t, TierSmall, a.Tier)
	assert.Equal(t, KindDrone, a.Kind)
	assert.Equal(t, 2, a.KillPoints(), "points default to health")

	g, err := Decode(strings.NewReader(gunshipYAML), "lg_gunship.yaml")
	require.NoError(t, err)
	assert.Equal(t, TierLarge, g.Tier)
	assert.Equal(t, KindGunship, g.Kind)
	assert.Equal(t, 7, g.KillPoints())
	require.Len(t, g.Cannons, 2)
	assert.Equal(t, 1, g.Cannons[0].MissileDamage, "damage defaults to 1")
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]struct {
		name string
		src  string
	}{
		"unknown prefix":       {"xl_huge.yaml", droneYAML},
		"cannons without cool": {"md_bad.yaml", strings.Replace(gunshipYAML, "attack_cooldown: 1.5\n", "", 1)},
		"inverted speed":       {"sm_bad.yaml", strings.Replace(droneYAML, "speed_max: 150", "speed_max: 50", 1)},
		"zero health":          {"sm_bad.yaml", strings.Replace(droneYAML, "health: 2", "health: 0", 1)},
		"unknown field":        {"sm_bad.yaml", droneYAML + "shield: 4\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.src), tc.name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/sm_drone.yaml":   {Data: []byte(droneYAML)},
		"defs/lg_gunship.yaml": {Data: []byte(gunshipYAML)},
		"defs/README.md":       {Data: []byte("ignored")},
	}
	table, err := LoadDir(fsys, "defs")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Len(t, table.Tier(TierSmall), 1)
	assert.Empty(t, table.Tier(TierMedium))
	assert.Len(t, table.Tier(TierLarge), 1)
}

func TestLoadDirEmptyIsConfigError(t *testing.T) {
	fsys := fstest.MapFS{"defs/notes.txt": {Data: []byte("x")}}
	_, err := LoadDir(fsys, "defs")
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestBundledArchetypesLoad(t *testing.T) {
	table, err := LoadDir(asset.Archetypes, asset.ArchetypeDir)
	require.NoError(t, err)
	for tier := Tier(0); tier < TierCount; tier++ {
		assert.NotEmpty(t, table.Tier(tier), tier.String())
	}
}

func TestDrawTier(t *testing.T) {
	assert.Equal(t, TierLarge, DrawTier(0))
	assert.Equal(t, TierLarge, DrawTier(0.0999))
	assert.Equal(t, TierMedium, DrawTier(0.1))
	assert.Equal(t, TierMedium, DrawTier(0.3999))
	assert.Equal(t, TierSmall, DrawTier(0.4))
	assert.Equal(t, TierSmall, DrawTier(0.9999))
}

func TestPickFallsBackToNonEmptyTier(t *testing.T) {
	a, err := Decode(strings.NewReader(droneYAML), "md_only.yaml")
	require.NoError(t, err)
	table, err := NewTable(a)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		assert.Equal(t, "md_only", table.Pick(rng).Name)
	}

	assert.Panics(t, func() { (&Table{}).Pick(rng) })
}

func TestInstantiateGunship(t *testing.T) {
	w := engine.NewWorld()
	g, err := Decode(strings.NewReader(gunshipYAML), "md_gunship.yaml")
	require.NoError(t, err)

	ship := Instantiate(w, &g, 100, 200, rand.New(rand.NewPCG(1, 2)))
	c := w.Components

	assert.True(t, c.Enemy.Has(ship))
	assert.True(t, c.DestroyOutOfArena.Has(ship))
	mv, ok := c.Moveable.Get(ship)
	require.True(t, ok)
	assert.Equal(t, 80.0, mv.Speed)
	assert.Equal(t, -1.0, mv.Direction.Y)

	k, _ := c.Killable.Get(ship)
	assert.Equal(t, 3, k.Health)
	assert.Equal(t, 7, k.Points)

	s, ok := c.Ship.Get(ship)
	require.True(t, ok)
	assert.True(t, s.IsAttacking)
	require.Len(t, s.Cannons, 2)
	for _, cannon := range s.Cannons {
		p, ok := c.Parent.Get(cannon)
		require.True(t, ok)
		assert.Equal(t, ship, p.Entity)
		cc, _ := c.Cannon.Get(cannon)
		assert.Equal(t, 1.5, cc.Cooldown)
	}
}

func TestInstantiateDroneSpeedRange(t *testing.T) {
	w := engine.NewWorld()
	a, err := Decode(strings.NewReader(droneYAML), "sm_drone.yaml")
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 100; i++ {
		e := Instantiate(w, &a, 50, 50, rng)
		mv, _ := w.Components.Moveable.Get(e)
		assert.GreaterOrEqual(t, mv.Speed, a.SpeedMin)
		assert.LessOrEqual(t, mv.Speed, a.SpeedMax)
		s, _ := w.Components.Ship.Get(e)
		assert.Empty(t, s.Cannons)
	}
}

func TestSpawnPlayer(t *testing.T) {
	w := engine.NewWorld()
	cfg := config.Default().Player
	p := SpawnPlayer(w, cfg)
	c := w.Components

	assert.True(t, c.Player.Has(p))
	assert.True(t, c.BoundInArena.Has(p))
	tr, _ := c.Transform.Get(p)
	assert.Equal(t, w.Resource.Config.ArenaWidth/2, tr.X)
	assert.Equal(t, cfg.Height/2, tr.Y)

	s, _ := c.Ship.Get(p)
	assert.False(t, s.IsAttacking)
	require.Len(t, s.Cannons, 1)
	cannon, _ := c.Cannon.Get(s.Cannons[0])
	assert.Equal(t, cfg.Cooldown, cannon.Cooldown)
	assert.Equal(t, cfg.MissileSpeed, cannon.MissileSpeed)
}
