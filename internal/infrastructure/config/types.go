package config

import (
	"time"

	"github.com/younwookim/platformquest/internal/domain/entity"
)

// GameConfig is the root of game.yaml plus the stages it lists.
type GameConfig struct {
	Display DisplayConfig          `yaml:"display"`
	Physics PhysicsConfig          `yaml:"physics"`
	Player  PlayerConfig           `yaml:"player"`
	Weapons WeaponsConfig          `yaml:"weapons"`
	Enemies map[string]EnemyConfig `yaml:"enemies"`
	Scenes  ScenesConfig           `yaml:"scenes"`

	// StageFiles lists stage file names under stages/, in play order.
	StageFiles []string `yaml:"stages"`

	// Stages is filled by LoadAll, keyed by StageConfig.ID.
	Stages map[string]*StageConfig `yaml:"-"`
}

// DisplayConfig holds window settings
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Title        string `yaml:"title"`
	TPS          int    `yaml:"tps"`
}

// Tick returns the length of one update at TPS, truncated to whole
// nanoseconds. A non-positive TPS counts as 60.
func (d DisplayConfig) Tick() time.Duration {
	tps := d.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// PhysicsConfig holds world-wide physics constants.
//
// TimeStep is the arc time added per tick; it is deliberately larger than
// the real tick length so that jumps read well at 60 ticks per second.
type PhysicsConfig struct {
	TileSize      float64 `yaml:"tileSize"`
	CharacterSize float64 `yaml:"characterSize"`
	Gravity       float64 `yaml:"gravity"`
	TimeStep      float64 `yaml:"timeStep"`
	MaxFallStep   float64 `yaml:"maxFallStep"`
}

// TilePos is a tile coordinate, row 0 at ground level.
type TilePos struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// PlayerConfig holds player movement parameters
type PlayerConfig struct {
	WalkStep   float64       `yaml:"walkStep"`
	JumpForce  float64       `yaml:"jumpForce"`
	Spawn      TilePos       `yaml:"spawn"`
	DeathDelay time.Duration `yaml:"deathDelay"`
}

// WeaponConfig holds one weapon kind. Lifetime and Warmup are in ticks,
// speeds in world units per tick.
type WeaponConfig struct {
	Lifetime  int     `yaml:"lifetime"`
	Speed     float64 `yaml:"speed"`
	Drift     float64 `yaml:"drift"`
	Warmup    int     `yaml:"warmup"`
	FallSpeed float64 `yaml:"fallSpeed"`
	Altitude  float64 `yaml:"altitude"`
}

// WeaponsConfig holds every weapon kind
type WeaponsConfig struct {
	Sword   WeaponConfig `yaml:"sword"`
	Fire    WeaponConfig `yaml:"fire"`
	Ice     WeaponConfig `yaml:"ice"`
	Thunder WeaponConfig `yaml:"thunder"`
}

// For returns the settings of kind.
func (w WeaponsConfig) For(kind entity.WeaponKind) WeaponConfig {
	switch kind {
	case entity.Fire:
		return w.Fire
	case entity.Ice:
		return w.Ice
	case entity.Thunder:
		return w.Thunder
	default:
		return w.Sword
	}
}

// EnemyConfig holds one enemy kind
type EnemyConfig struct {
	WalkStep float64 `yaml:"walkStep"`
	Flying   bool    `yaml:"flying"`
	Decision int     `yaml:"decision"`
}

// ScenesConfig holds the timings of the non-gameplay scenes
type ScenesConfig struct {
	LoadingDelay time.Duration `yaml:"loadingDelay"`
	EndingFirst  int           `yaml:"endingFirst"`
	EndingLast   int           `yaml:"endingLast"`
	EndingSleep  time.Duration `yaml:"endingSleep"`
}

// StageConfig is one stages/<name>.yaml file.
type StageConfig struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Texture string       `yaml:"texture"`
	Next    string       `yaml:"next"`
	Final   bool         `yaml:"final"`
	Map     []string     `yaml:"map"`
	Enemies []EnemySpawn `yaml:"enemies"`
}

// EnemySpawn places one enemy when the stage starts.
type EnemySpawn struct {
	Kind         string `yaml:"kind"`
	Col          int    `yaml:"col"`
	Row          int    `yaml:"row"`
	Facing       string `yaml:"facing"`
	MoveLifetime int    `yaml:"moveLifetime"`
}
