// Package assets resolves the sprite manifest into text-art frames and draws
// them into a core.Screen, scaled to a viewport and rotated around their
// center.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// ManifestFile is the manifest location inside an asset filesystem.
const ManifestFile = "manifest.yaml"

// Sprite names the game draws.
const (
	SpriteRocket    = "rocket_body"
	SpriteThrust    = "rocket_thrust"
	SpriteLeftRCS   = "rocket_left_rcs"
	SpriteRightRCS  = "rocket_right_rcs"
	SpritePlatform  = "platform"
	SpriteExplosion = "explosion"
	SpriteSky       = "sky"
)

// Required lists every sprite a Library must provide.
var Required = []string{
	SpriteRocket,
	SpriteThrust,
	SpriteLeftRCS,
	SpriteRightRCS,
	SpritePlatform,
	SpriteExplosion,
	SpriteSky,
}

var (
	// ErrMissingAsset is returned when a sprite or frame file cannot be found.
	ErrMissingAsset = errors.New("missing asset")
	// ErrBadManifest is returned for structurally invalid manifests or frames.
	ErrBadManifest = errors.New("bad asset manifest")
)

//go:embed data
var embedded embed.FS

// Embedded returns the asset filesystem compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded data: %v", err))
	}
	return sub
}

// Manifest is the YAML description of all sprites.
type Manifest struct {
	Sprites []SpriteEntry `yaml:"sprites"`
}

// SpriteEntry names one sprite and the files holding its frames.
type SpriteEntry struct {
	Name   string     `yaml:"name"`
	Color  core.Color `yaml:"color"`
	Frames []string   `yaml:"frames"`
}

// ParseManifest decodes and checks a manifest document.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}

	seen := make(map[string]bool, len(m.Sprites))
	for i, e := range m.Sprites {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return Manifest{}, fmt.Errorf("%w: sprite #%d has no name", ErrBadManifest, i)
		}
		if seen[name] {
			return Manifest{}, fmt.Errorf("%w: duplicate sprite %q", ErrBadManifest, name)
		}
		if len(e.Frames) == 0 {
			return Manifest{}, fmt.Errorf("%w: sprite %q has no frames", ErrBadManifest, name)
		}
		seen[name] = true
		m.Sprites[i].Name = name
	}
	return m, nil
}

// Library holds every resolved sprite by name.
type Library struct {
	sprites map[string]*Sprite
	order   []string
}

// Load reads the manifest from fsys, resolves every frame and checks that all
// Required sprites are present.
func Load(fsys fs.FS) (*Library, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, ManifestFile, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	lib := &Library{sprites: make(map[string]*Sprite, len(m.Sprites))}
	for _, e := range m.Sprites {
		sprite := &Sprite{Name: e.Name, Color: e.Color}
		for _, p := range e.Frames {
			framePath := path.Clean(p)
			raw, err := fs.ReadFile(fsys, framePath)
			if err != nil {
				return nil, fmt.Errorf("%w: sprite %q frame %s: %v", ErrMissingAsset, e.Name, framePath, err)
			}
			frame, err := ParseFrame(string(raw))
			if err != nil {
				return nil, fmt.Errorf("sprite %q frame %s: %w", e.Name, framePath, err)
			}
			sprite.Frames = append(sprite.Frames, frame)
		}
		lib.sprites[e.Name] = sprite
		lib.order = append(lib.order, e.Name)
	}

	for _, name := range Required {
		if _, ok := lib.sprites[name]; !ok {
			return nil, fmt.Errorf("%w: sprite %q not in manifest", ErrMissingAsset, name)
		}
	}
	return lib, nil
}

// LoadEmbedded loads the sprites compiled into the binary.
func LoadEmbedded() (*Library, error) {
	return Load(Embedded())
}

// Sprite returns the named sprite.
func (l *Library) Sprite(name string) (*Sprite, error) {
	s, ok := l.sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: sprite %q", ErrMissingAsset, name)
	}
	return s, nil
}

// Sprites returns all sprites in manifest order.
func (l *Library) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.sprites[name])
	}
	return out
}
