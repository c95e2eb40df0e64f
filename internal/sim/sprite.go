package sim

// Sprite is an opaque handle to a renderable image plus its intrinsic size.
// The simulation only reads the size; frontends resolve the ID to pixels.
type Sprite struct {
	ID string
	W  int
	H  int
}

// Sprite IDs, matching the asset file names without extension.
const (
	SpritePlayer       = "player"
	SpriteEnemy        = "enemy"
	SpritePlayerBullet = "playerBullet"
	SpriteEnemyBullet  = "alienBullet"
	SpriteExplosion    = "explosion"
)

// Sprites bundles every visual the simulation spawns entities with.
type Sprites struct {
	Player       Sprite
	Enemy        Sprite
	PlayerBullet Sprite
	EnemyBullet  Sprite
	Explosion    Sprite
}

// DefaultSprites returns the sizes of the stock art. Headless runs and tests
// use these without loading any image.
func DefaultSprites() Sprites {
	return Sprites{
		Player:       Sprite{ID: SpritePlayer, W: 48, H: 46},
		Enemy:        Sprite{ID: SpriteEnemy, W: 48, H: 46},
		PlayerBullet: Sprite{ID: SpritePlayerBullet, W: 22, H: 10},
		EnemyBullet:  Sprite{ID: SpriteEnemyBullet, W: 16, H: 16},
		Explosion:    Sprite{ID: SpriteExplosion, W: 96, H: 96},
	}
}

// All returns the sprites in a fixed order.
func (s Sprites) All() []Sprite {
	return []Sprite{s.Player, s.Enemy, s.PlayerBullet, s.EnemyBullet, s.Explosion}
}
