package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/platformquest/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStage = errors.New("config: unknown stage")
	ErrInvalid      = errors.New("config: invalid value")
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml in %s: %w", l.basePath, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s in %s: %w", name, l.basePath, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and every stage it lists, then validates them.
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	cfg.Stages = make(map[string]*StageConfig, len(cfg.StageFiles))
	for _, name := range cfg.StageFiles {
		st, err := l.LoadStage(name)
		if err != nil {
			return nil, err
		}
		cfg.Stages[st.ID] = st
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the simulation cannot run without.
func (c *GameConfig) Validate() error {
	if c.Physics.TileSize <= 0 || c.Physics.CharacterSize <= 0 {
		return fmt.Errorf("%w: tile and character size must be positive", ErrInvalid)
	}
	if c.Physics.Gravity <= 0 || c.Physics.TimeStep <= 0 {
		return fmt.Errorf("%w: gravity and timeStep must be positive", ErrInvalid)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive", ErrInvalid)
	}
	for _, kind := range entity.WeaponKinds {
		if c.Weapons.For(kind).Lifetime <= 0 {
			return fmt.Errorf("%w: %s lifetime must be positive", ErrInvalid, kind)
		}
	}

	for id, st := range c.Stages {
		if st.Next != "" {
			if _, ok := c.Stages[st.Next]; !ok {
				return fmt.Errorf("%w: %s links to %q", ErrUnknownStage, id, st.Next)
			}
		}
		for _, sp := range st.Enemies {
			kind, ok := entity.ParseEnemyKind(sp.Kind)
			if !ok {
				return fmt.Errorf("%w: stage %s enemy kind %q", ErrInvalid, id, sp.Kind)
			}
			if _, ok := c.Enemies[kind.String()]; !ok {
				return fmt.Errorf("%w: stage %s uses unconfigured enemy %q", ErrInvalid, id, sp.Kind)
			}
		}
	}
	return nil
}

// Stage returns the stage with the given ID.
func (c *GameConfig) Stage(id string) (*StageConfig, error) {
	st, ok := c.Stages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, id)
	}
	return st, nil
}
