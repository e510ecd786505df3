// Package config holds every tunable of the game: screen and map layout,
// per-entity stats and animation tables, spawner and effect constants.
// Values start from DefaultConfig and can be overridden from a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/duskblade/internal/anim"
)

// Config holds all game tunables
type Config struct {
	Screen   ScreenConfig  `yaml:"screen"`
	World    WorldConfig   `yaml:"world"`
	Player   PlayerConfig  `yaml:"player"`
	Enemy    EnemyConfig   `yaml:"enemy"`
	Spawner  SpawnerConfig `yaml:"spawner"`
	Effects  EffectsConfig `yaml:"effects"`
	PowerUps PowerUpConfig `yaml:"power_ups"`
	Audio    AudioConfig   `yaml:"audio"`
	UI       UIConfig      `yaml:"ui"`
}

// RGB is an opaque colour written as [r, g, b] in YAML.
type RGB [3]uint8

// WithAlpha returns the colour with the given straight (non-premultiplied)
// alpha.
func (c RGB) WithAlpha(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: alpha}
}

// Brighten adds delta to each channel, saturating at 255.
func (c RGB) Brighten(delta int) RGB {
	var out RGB
	for i, v := range c {
		n := int(v) + delta
		if n > 255 {
			n = 255
		}
		if n < 0 {
			n = 0
		}
		out[i] = uint8(n)
	}
	return out
}

// Point is a position in world space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ScreenConfig defines the viewport and tick rate
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Simulation ticks per second
	Title  string `yaml:"title"`
}

// PlatformSpec places one floating platform. Y is the top edge.
type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldConfig defines the map layout and camera behaviour
type WorldConfig struct {
	Sections             int            `yaml:"sections"`               // Map width in viewports
	GroundHeight         float64        `yaml:"ground_height"`          // Ground strip height at the bottom
	PlatformWidth        float64        `yaml:"platform_width"`         // Drawn platform width
	PlatformHeight       float64        `yaml:"platform_height"`        // Drawn platform height
	PlatformInset        float64        `yaml:"platform_inset"`         // Collision rect is inset this much top and bottom
	Platforms            []PlatformSpec `yaml:"platforms"`              // Platform layout
	PlayerStart          Point          `yaml:"player_start"`           // X is world_x, Y is the player's bottom edge
	ScrollRightThreshold float64        `yaml:"scroll_right_threshold"` // Fraction of viewport width
	ScrollLeftThreshold  float64        `yaml:"scroll_left_threshold"`  // Fraction of viewport width
	Background           string         `yaml:"background"`             // Background image path
	Tileset              string         `yaml:"tileset"`                // Ground/platform tile sheet
}

// SpriteConfig describes an entity's sheet and animation table
type SpriteConfig struct {
	Sheet       string     `yaml:"sheet"`
	FrameWidth  int        `yaml:"frame_width"`
	FrameHeight int        `yaml:"frame_height"`
	Scale       float64    `yaml:"scale"`
	Animations  anim.Table `yaml:"animations"`
	Fallback    RGB        `yaml:"fallback"` // Placeholder colour when the sheet is missing
}

// BodyWidth returns the scaled on-screen width.
func (s SpriteConfig) BodyWidth() float64 {
	return float64(s.FrameWidth) * s.Scale
}

// BodyHeight returns the scaled on-screen height.
func (s SpriteConfig) BodyHeight() float64 {
	return float64(s.FrameHeight) * s.Scale
}

// PlayerConfig defines player stats and ability tuning. Distances and speeds
// are unscaled; the player multiplies them by Sprite.Scale.
type PlayerConfig struct {
	Sprite SpriteConfig `yaml:"sprite"`

	MaxHealth   float64 `yaml:"max_health"`
	MaxMana     float64 `yaml:"max_mana"`
	ManaRegen   float64 `yaml:"mana_regen"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`

	// Melee
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown int     `yaml:"attack_cooldown"`
	AttackWidth    float64 `yaml:"attack_width"`
	AttackHeight   float64 `yaml:"attack_height"`
	AttackColor    RGB     `yaml:"attack_color"`

	// Magic
	MagicDamage   float64 `yaml:"magic_damage"`
	MagicCost     float64 `yaml:"magic_cost"`
	MagicCooldown int     `yaml:"magic_cooldown"`
	MagicWidth    float64 `yaml:"magic_width"`
	MagicHeight   float64 `yaml:"magic_height"`
	MagicColor    RGB     `yaml:"magic_color"`

	// Dash
	DashDistance float64 `yaml:"dash_distance"`
	DashCost     float64 `yaml:"dash_cost"`
	DashCooldown int     `yaml:"dash_cooldown"`

	// Shield
	ShieldCost            float64 `yaml:"shield_cost"`
	ShieldDuration        int     `yaml:"shield_duration"`
	ShieldCooldown        int     `yaml:"shield_cooldown"`
	ShieldDamageReduction float64 `yaml:"shield_damage_reduction"`
	ShieldPulseSpeed      float64 `yaml:"shield_pulse_speed"` // Degrees per tick
	ShieldRadius          float64 `yaml:"shield_radius"`
	ShieldColor           RGB     `yaml:"shield_color"`
	ShieldParticleColor   RGB     `yaml:"shield_particle_color"`
	ShieldAuraChance      float64 `yaml:"shield_aura_chance"`

	HealColor RGB `yaml:"heal_color"`
	ManaColor RGB `yaml:"mana_color"`
}

// EnemyConfig defines enemy stats and AI tuning
type EnemyConfig struct {
	Sprite SpriteConfig `yaml:"sprite"`

	MaxHealth        float64 `yaml:"max_health"`
	Speed            float64 `yaml:"speed"`
	Gravity          float64 `yaml:"gravity"`
	AttackRange      float64 `yaml:"attack_range"`
	AttackCooldown   int     `yaml:"attack_cooldown"`
	AttackDamage     float64 `yaml:"attack_damage"`
	HitVerticalRange float64 `yaml:"hit_vertical_range"` // Max centre-y gap for an attack to land
	RunDistance      float64 `yaml:"run_distance"`       // Below this distance the enemy runs
	DeathDuration    int     `yaml:"death_duration"`
	TrailLength      int     `yaml:"trail_length"`
	TrailInterval    int     `yaml:"trail_interval"`
	PointsValue      int     `yaml:"points_value"`
	DropChance       float64 `yaml:"drop_chance"`
	HealthDropChance float64 `yaml:"health_drop_chance"`
	HitColor         RGB     `yaml:"hit_color"`
	TrailColor       RGB     `yaml:"trail_color"`
}

// SpawnerConfig controls enemy population
type SpawnerConfig struct {
	Points       []Point `yaml:"points"` // Y is the spawned enemy's bottom edge
	MaxEnemies   int     `yaml:"max_enemies"`
	RespawnDelay int     `yaml:"respawn_delay"` // Ticks
	Proximity    float64 `yaml:"proximity"`     // A living enemy this close occupies the point
}

// EffectsConfig tunes the particle system
type EffectsConfig struct {
	LifetimeMin    int     `yaml:"lifetime_min"`
	LifetimeMax    int     `yaml:"lifetime_max"`
	ColorJitter    int     `yaml:"color_jitter"`
	SizeJitter     float64 `yaml:"size_jitter"` // Fractional size variation
	AlphaCap       float64 `yaml:"alpha_cap"`
	MinAlpha       float64 `yaml:"min_alpha"` // Particles fading below this are removed
	VelocityJitter float64 `yaml:"velocity_jitter"`
	TrailLength    int     `yaml:"trail_length"`
}

// PowerUpConfig tunes drops
type PowerUpConfig struct {
	Size           float64 `yaml:"size"`
	HealthValue    float64 `yaml:"health_value"`
	ManaValue      float64 `yaml:"mana_value"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
	FloatSpeed     float64 `yaml:"float_speed"` // Radians per tick
	PulseMin       float64 `yaml:"pulse_min"`
	PulseMax       float64 `yaml:"pulse_max"`
	PulseSpeed     float64 `yaml:"pulse_speed"`
	HealthColor    RGB     `yaml:"health_color"`
	ManaColor      RGB     `yaml:"mana_color"`
}

// AudioConfig controls the synthesised sound cues
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// UIConfig tunes overlays
type UIConfig struct {
	TutorialSeconds int `yaml:"tutorial_seconds"`
	TutorialFade    int `yaml:"tutorial_fade"` // Alpha lost per tick while fading
}

// SectionWidth returns the total map width.
func (c *Config) SectionWidth() float64 {
	return float64(c.Screen.Width * c.World.Sections)
}

// MaxScroll returns the largest legal camera scroll.
func (c *Config) MaxScroll() float64 {
	return c.SectionWidth() - float64(c.Screen.Width)
}

// GroundTop returns the y of the ground surface.
func (c *Config) GroundTop() float64 {
	return float64(c.Screen.Height) - c.World.GroundHeight
}

// PlayerStates lists the animations every player sheet must define.
var PlayerStates = []anim.State{anim.Idle, anim.Running, anim.Jumping, anim.Attacking, anim.Magic, anim.Dash, anim.Hurt, anim.Death}

// EnemyStates lists the animations every enemy sheet must define.
var EnemyStates = []anim.State{anim.Idle, anim.Walking, anim.Running, anim.Jumping, anim.Attacking, anim.Attacking2, anim.Attacking3, anim.Hurt, anim.Death}

// DefaultConfig returns the tuning of the original demo
func DefaultConfig() *Config {
	const width, height = 800, 600
	return &Config{
		Screen: ScreenConfig{
			Width:  width,
			Height: height,
			TPS:    60,
			Title:  "Duskblade",
		},
		World: WorldConfig{
			Sections:       3,
			GroundHeight:   64,
			PlatformWidth:  120,
			PlatformHeight: 32,
			PlatformInset:  5,
			Platforms: []PlatformSpec{
				{X: 200, Y: height - 200},
				{X: 450, Y: height - 280},
				{X: 700, Y: height - 340},
				{X: 950, Y: height - 260},
				{X: 1200, Y: height - 310},
				{X: 1450, Y: height - 380},
				{X: 1700, Y: height - 280},
				{X: 1950, Y: height - 340},
			},
			PlayerStart:          Point{X: 100, Y: height - 60},
			ScrollRightThreshold: 0.7,
			ScrollLeftThreshold:  0.3,
			Background:           "assets/backgrounds/city.png",
			Tileset:              "assets/tileset.png",
		},
		Player: PlayerConfig{
			Sprite: SpriteConfig{
				Sheet:       "assets/player.png",
				FrameWidth:  50,
				FrameHeight: 37,
				Scale:       2.0,
				Animations: anim.Table{
					anim.Idle:      {Row: 0, Frames: 4, DurationMS: 120},
					anim.Running:   {Row: 1, Frames: 6, DurationMS: 80},
					anim.Jumping:   {Row: 2, Frames: 2, DurationMS: 100},
					anim.Attacking: {Row: 4, Frames: 4, DurationMS: 80},
					anim.Magic:     {Row: 3, Frames: 4, DurationMS: 100},
					anim.Hurt:      {Row: 5, Frames: 2, DurationMS: 100},
					anim.Death:     {Row: 5, Frames: 4, DurationMS: 150},
					anim.Dash:      {Row: 6, Frames: 3, DurationMS: 80},
				},
				Fallback: RGB{0, 0, 255},
			},
			MaxHealth:   150,
			MaxMana:     120,
			ManaRegen:   0.15,
			Speed:       5,
			Gravity:     0.5,
			JumpImpulse: 10,

			AttackDamage:   30,
			AttackCooldown: 30,
			AttackWidth:    70,
			AttackHeight:   50,
			AttackColor:    RGB{128, 0, 255},

			MagicDamage:   45,
			MagicCost:     30,
			MagicCooldown: 45,
			MagicWidth:    100,
			MagicHeight:   80,
			MagicColor:    RGB{255, 255, 100},

			DashDistance: 15,
			DashCost:     20,
			DashCooldown: 45,

			ShieldCost:            35,
			ShieldDuration:        600,
			ShieldCooldown:        90,
			ShieldDamageReduction: 0.5,
			ShieldPulseSpeed:      1.5,
			ShieldRadius:          70,
			ShieldColor:           RGB{100, 180, 255},
			ShieldParticleColor:   RGB{150, 200, 255},
			ShieldAuraChance:      0.4,

			HealColor: RGB{220, 40, 40},
			ManaColor: RGB{40, 40, 220},
		},
		Enemy: EnemyConfig{
			Sprite: SpriteConfig{
				FrameWidth:  128,
				FrameHeight: 128,
				Scale:       1.0,
				Animations: anim.Table{
					anim.Idle:       {Sheet: "assets/enemy/Idle.png", Frames: 4, DurationMS: 200},
					anim.Walking:    {Sheet: "assets/enemy/Walk.png", Frames: 6, DurationMS: 150},
					anim.Running:    {Sheet: "assets/enemy/Run.png", Frames: 6, DurationMS: 120},
					anim.Jumping:    {Sheet: "assets/enemy/Jump.png", Frames: 4, DurationMS: 150},
					anim.Attacking:  {Sheet: "assets/enemy/Attack_1.png", Frames: 6, DurationMS: 120},
					anim.Attacking2: {Sheet: "assets/enemy/Attack_2.png", Frames: 6, DurationMS: 120},
					anim.Attacking3: {Sheet: "assets/enemy/Attack_3.png", Frames: 6, DurationMS: 120},
					anim.Hurt:       {Sheet: "assets/enemy/Hurt.png", Frames: 3, DurationMS: 150},
					anim.Death:      {Sheet: "assets/enemy/Dead.png", Frames: 4, DurationMS: 200},
				},
				Fallback: RGB{255, 0, 0},
			},
			MaxHealth:        100,
			Speed:            3,
			Gravity:          0.8,
			AttackRange:      100,
			AttackCooldown:   60,
			AttackDamage:     10,
			HitVerticalRange: 50,
			RunDistance:      200,
			DeathDuration:    60,
			TrailLength:      5,
			TrailInterval:    5,
			PointsValue:      50,
			DropChance:       0.6,
			HealthDropChance: 0.7,
			HitColor:         RGB{220, 40, 40},
			TrailColor:       RGB{255, 0, 0},
		},
		Spawner: SpawnerConfig{
			Points: []Point{
				{X: 450, Y: height - 100},
				{X: 1450, Y: height - 100},
			},
			MaxEnemies:   3,
			RespawnDelay: 1800,
			Proximity:    50,
		},
		Effects: EffectsConfig{
			LifetimeMin:    6,
			LifetimeMax:    10,
			ColorJitter:    20,
			SizeJitter:     0.2,
			AlphaCap:       250,
			MinAlpha:       30,
			VelocityJitter: 0.1,
			TrailLength:    3,
		},
		PowerUps: PowerUpConfig{
			Size:           24,
			HealthValue:    35,
			ManaValue:      50,
			FloatAmplitude: 6,
			FloatSpeed:     0.08,
			PulseMin:       0.85,
			PulseMax:       1.15,
			PulseSpeed:     0.04,
			HealthColor:    RGB{220, 40, 40},
			ManaColor:      RGB{40, 40, 220},
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.6,
		},
		UI: UIConfig{
			TutorialSeconds: 30,
			TutorialFade:    5,
		},
	}
}

// LoadConfig loads the config from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid field
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: invalid size %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.TPS > 0, "screen: tps must be positive, got %d", c.Screen.TPS)
	check(c.World.Sections >= 1, "world: sections must be at least 1, got %d", c.World.Sections)
	check(c.World.GroundHeight >= 0, "world: ground_height must not be negative")
	check(c.World.PlatformWidth > 0 && c.World.PlatformHeight > 2*c.World.PlatformInset,
		"world: platform %.0fx%.0f too small for inset %.0f", c.World.PlatformWidth, c.World.PlatformHeight, c.World.PlatformInset)
	check(c.World.ScrollLeftThreshold > 0 && c.World.ScrollLeftThreshold < c.World.ScrollRightThreshold && c.World.ScrollRightThreshold < 1,
		"world: scroll thresholds must satisfy 0 < left < right < 1, got %.2f/%.2f", c.World.ScrollLeftThreshold, c.World.ScrollRightThreshold)

	errs = append(errs, validateSprite("player", c.Player.Sprite, PlayerStates)...)
	errs = append(errs, validateSprite("enemy", c.Enemy.Sprite, EnemyStates)...)

	check(c.Player.MaxHealth > 0, "player: max_health must be positive")
	check(c.Player.MaxMana >= 0, "player: max_mana must not be negative")
	check(c.Player.ShieldDamageReduction >= 0 && c.Player.ShieldDamageReduction <= 1,
		"player: shield_damage_reduction must be within [0,1], got %.2f", c.Player.ShieldDamageReduction)
	check(c.Player.AttackCooldown > 0 && c.Player.MagicCooldown > 0 && c.Player.DashCooldown > 0,
		"player: ability cooldowns must be positive")
	check(c.Player.ShieldDuration > 0, "player: shield_duration must be positive")
	check(c.Player.ShieldCooldown >= 0, "player: shield_cooldown must not be negative")
	check(c.Player.Sprite.BodyWidth() < c.SectionWidth(), "player: body wider than the map")

	check(c.Enemy.MaxHealth > 0, "enemy: max_health must be positive")
	check(c.Enemy.DeathDuration > 0, "enemy: death_duration must be positive")
	check(c.Enemy.TrailLength > 0 && c.Enemy.TrailInterval > 0, "enemy: trail length and interval must be positive")
	check(inUnit(c.Enemy.DropChance) && inUnit(c.Enemy.HealthDropChance), "enemy: drop chances must be within [0,1]")
	check(c.Enemy.Sprite.BodyWidth() < c.SectionWidth(), "enemy: body wider than the map")

	check(c.Spawner.MaxEnemies >= 1, "spawner: max_enemies must be at least 1, got %d", c.Spawner.MaxEnemies)
	check(c.Spawner.RespawnDelay >= 0, "spawner: respawn_delay must not be negative")

	if right := c.SectionWidth() - c.Player.Sprite.BodyWidth(); !inRange(c.World.PlayerStart.X, 0, right) {
		errs = append(errs, fmt.Errorf("world: player_start x %.0f outside [0, %.0f]", c.World.PlayerStart.X, right))
	}
	right := c.SectionWidth() - c.Enemy.Sprite.BodyWidth()
	for i, pt := range c.Spawner.Points {
		check(inRange(pt.X, 0, right), "spawner: point %d x %.0f outside [0, %.0f]", i, pt.X, right)
	}

	check(c.Effects.LifetimeMin > 0 && c.Effects.LifetimeMin <= c.Effects.LifetimeMax,
		"effects: lifetime range [%d,%d] is invalid", c.Effects.LifetimeMin, c.Effects.LifetimeMax)
	check(c.Effects.TrailLength > 0, "effects: trail_length must be positive")
	check(c.Effects.ColorJitter >= 0, "effects: color_jitter must not be negative, got %d", c.Effects.ColorJitter)
	check(c.Effects.VelocityJitter >= 0, "effects: velocity_jitter must not be negative")
	check(c.Effects.SizeJitter >= 0 && c.Effects.SizeJitter < 1,
		"effects: size_jitter must be within [0,1), got %.2f", c.Effects.SizeJitter)
	check(c.Effects.MinAlpha >= 0 && c.Effects.MinAlpha <= c.Effects.AlphaCap,
		"effects: alpha range [%.0f,%.0f] is invalid", c.Effects.MinAlpha, c.Effects.AlphaCap)

	check(c.PowerUps.Size > 0, "power_ups: size must be positive")
	check(c.Audio.SampleRate > 0, "audio: sample_rate must be positive")

	return errors.Join(errs...)
}

func validateSprite(kind string, s SpriteConfig, required []anim.State) []error {
	var errs []error
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("%s: invalid frame size %dx%d", kind, s.FrameWidth, s.FrameHeight))
	}
	if s.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%s: scale must be positive, got %.2f", kind, s.Scale))
	}
	if err := s.Animations.Validate(required); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", kind, err))
	}
	return errs
}

func inUnit(v float64) bool {
	return inRange(v, 0, 1)
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
