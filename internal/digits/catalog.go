package digits

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// CatalogVersion is the only catalog format this build understands.
const CatalogVersion = 1

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ErrUnsupportedVersion is returned for catalogs with an unknown version.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// ValidationError contains details about a catalog validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// YAMLCatalog is the on-disk catalog layout.
type YAMLCatalog struct {
	Version int                 `yaml:"version"`
	Glyph   YAMLGlyph           `yaml:"glyph"`
	Digits  map[int][]YAMLPiece `yaml:"digits"`
}

// YAMLGlyph declares the glyph size the scripts are drawn for.
type YAMLGlyph struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// YAMLPiece is one scripted spawn.
type YAMLPiece struct {
	Shape    string `yaml:"shape"`
	Rotation int    `yaml:"rotation"` // degrees: 0, 90, 180 or 270
	DX       int    `yaml:"dx"`
}

// Catalog maps every digit to its spawn script. It is read-only once loaded
// and safe to share between digit boards.
type Catalog struct {
	scripts [10][]tetromino.Descriptor
}

// Sequence returns the spawn script for digit, or nil for values outside 0-9.
// Callers must not modify the returned slice.
func (c *Catalog) Sequence(digit int) []tetromino.Descriptor {
	if digit < 0 || digit > 9 {
		return nil
	}
	return c.scripts[digit]
}

// Len returns the number of pieces in digit's script.
func (c *Catalog) Len(digit int) int {
	return len(c.Sequence(digit))
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("digits: yaml unmarshal: %w", err)
	}
	if err := yc.Validate(); err != nil {
		return nil, fmt.Errorf("digits: %w", err)
	}

	cat := &Catalog{}
	for d := 0; d <= 9; d++ {
		script := make([]tetromino.Descriptor, 0, len(yc.Digits[d]))
		for _, p := range yc.Digits[d] {
			// Already validated
			shape, _ := tetromino.ParseShape(p.Shape)
			rot, _ := tetromino.RotationFromDegrees(p.Rotation)
			script = append(script, tetromino.Descriptor{Shape: shape, Rotation: rot, DX: p.DX})
		}
		cat.scripts[d] = script
	}
	return cat, nil
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("digits: failed to read catalog %s: %w", path, err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	cat, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return cat
})

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Validate checks the catalog before it is used.
// Checks:
//   - Version is supported
//   - Glyph size matches the clock layout
//   - All ten digits have a non-empty script
//   - Shapes and rotations are known
//   - Every piece fits inside the glyph's columns
func (yc *YAMLCatalog) Validate() error {
	if yc.Version != CatalogVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, yc.Version)
	}

	if yc.Glyph.Width != GlyphWidth || yc.Glyph.Height != GlyphHeight {
		return ValidationError{
			Code:    "GLYPH_SIZE",
			Message: fmt.Sprintf("glyph is %dx%d, expected %dx%d", yc.Glyph.Width, yc.Glyph.Height, GlyphWidth, GlyphHeight),
		}
	}

	for d := range yc.Digits {
		if d < 0 || d > 9 {
			return ValidationError{
				Code:    "UNKNOWN_DIGIT",
				Message: fmt.Sprintf("script for %d is not a digit", d),
			}
		}
	}

	for d := 0; d <= 9; d++ {
		script, ok := yc.Digits[d]
		if !ok {
			return ValidationError{
				Code:    "MISSING_DIGIT",
				Message: fmt.Sprintf("no script for digit %d", d),
			}
		}
		if len(script) == 0 {
			return ValidationError{
				Code:    "EMPTY_SCRIPT",
				Message: fmt.Sprintf("script for digit %d is empty", d),
			}
		}
		for i, p := range script {
			if err := p.validate(); err != nil {
				return ValidationError{
					Code:    err.Code,
					Message: fmt.Sprintf("digit %d piece %d: %s", d, i, err.Message),
				}
			}
		}
	}

	return nil
}

func (p YAMLPiece) validate() *ValidationError {
	shape, err := tetromino.ParseShape(p.Shape)
	if err != nil {
		return &ValidationError{Code: "UNKNOWN_SHAPE", Message: err.Error()}
	}
	rot, err := tetromino.RotationFromDegrees(p.Rotation)
	if err != nil {
		return &ValidationError{Code: "UNKNOWN_ROTATION", Message: err.Error()}
	}

	for _, c := range tetromino.Lookup(shape, rot).Cells() {
		if x := p.DX + c.DX; x < 0 || x >= GlyphWidth {
			return &ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("%s at %s with dx=%d covers column %d", shape, rot, p.DX, x),
			}
		}
	}
	return nil
}
