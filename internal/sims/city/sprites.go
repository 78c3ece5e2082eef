package city

// SpriteType tags a moving entity.
type SpriteType int

const (
	SpriteTrain SpriteType = iota
	SpriteHelicopter
	SpriteAirplane
	SpriteShip
	SpriteMonster
	SpriteTornado
	SpriteExplosion
	SpriteBus
)

// Sprite is a moving entity. Positions are in 1/16-tile units. Frame zero
// hides the sprite; Count is its remaining lifetime in ticks.
type Sprite struct {
	Type  SpriteType
	Frame int
	X, Y  int
	DestX int
	DestY int
	Count int
	Dir   int
	Speed int
	Flag  int
}

// WorldXY returns the sprite's position in tile coordinates.
func (s *Sprite) WorldXY() (int, int) { return s.X / 16, s.Y / 16 }

type spriteSpec struct {
	count int
	speed int
}

var spriteSpecs = map[SpriteType]spriteSpec{
	SpriteTrain:      {count: 60, speed: 16},
	SpriteHelicopter: {count: 180, speed: 8},
	SpriteAirplane:   {count: 120, speed: 24},
	SpriteShip:       {count: 240, speed: 4},
	SpriteMonster:    {count: 300, speed: 6},
	SpriteTornado:    {count: 120, speed: 10},
	SpriteExplosion:  {count: 12, speed: 0},
	SpriteBus:        {count: 120, speed: 12},
}

func (c *City) hasSprite(t SpriteType) bool {
	for _, s := range c.sprites {
		if s.Type == t && s.Frame != 0 {
			return true
		}
	}
	return false
}

// makeSprite appends a live sprite at a tile position. Destinations are
// random except for the monster, which heads for the pollution peak.
func (c *City) makeSprite(t SpriteType, x, y int) *Sprite {
	spec := spriteSpecs[t]
	s := &Sprite{
		Type:  t,
		Frame: 1,
		X:     x * 16,
		Y:     y * 16,
		Count: spec.count,
		Speed: spec.speed,
	}
	switch t {
	case SpriteMonster:
		s.DestX = c.pollutionMaxX * 16
		s.DestY = c.pollutionMaxY * 16
	default:
		s.DestX = c.rng.Range(c.w-1) * 16
		s.DestY = c.rng.Range(c.h-1) * 16
	}
	c.sprites = append(c.sprites, s)
	return s
}

// moveSprites advances every live sprite toward its destination, applies
// ground damage for the destructive kinds, and swap-removes the dead.
func (c *City) moveSprites() {
	for _, s := range c.sprites {
		if s.Frame == 0 {
			continue
		}
		s.Count--
		if s.Count <= 0 {
			s.Frame = 0
			continue
		}
		s.Frame = s.Frame%8 + 1

		s.X += step(s.DestX-s.X, s.Speed)
		s.Y += step(s.DestY-s.Y, s.Speed)

		switch s.Type {
		case SpriteTornado, SpriteMonster:
			wx, wy := s.WorldXY()
			cell := c.tiles.Get(wx, wy)
			if isBulldozable(cell) && c.rng.Range(2) == 0 {
				c.tiles.Set(wx, wy, Rubble+Cell(c.rng.Range(3))|BullBit)
				c.mapSerial++
			}
			if s.X == s.DestX && s.Y == s.DestY {
				s.DestX = c.rng.Range(c.w-1) * 16
				s.DestY = c.rng.Range(c.h-1) * 16
			}
		}
	}

	for i := 0; i < len(c.sprites); {
		if c.sprites[i].Frame == 0 {
			last := len(c.sprites) - 1
			c.sprites[i] = c.sprites[last]
			c.sprites = c.sprites[:last]
			continue
		}
		i++
	}
}

func step(delta, speed int) int {
	if delta > speed {
		return speed
	}
	if delta < -speed {
		return -speed
	}
	return delta
}
