// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/element"
	"github.com/katalvlaran/hydridic/neighbor"
	"github.com/katalvlaran/hydridic/scene"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Style selects and tunes the bond style.
type Style struct {
	Name          string  `yaml:"name"`
	ScaleFactor   float64 `yaml:"scale_factor"`
	Vertices      int     `yaml:"vertices"`
	FlareFraction float64 `yaml:"flare_fraction"`
}

// Config is the file format of hydridic settings.
type Config struct {
	CutoffMultiplier   float64            `yaml:"cutoff_multiplier"`
	Skin               float64            `yaml:"skin"`
	Overrides          map[string]float64 `yaml:"overrides,omitempty"` // symbol -> cutoff radius, Å
	Style              Style              `yaml:"style"`
	SingletonMaterials bool               `yaml:"singleton_materials"`
	Center             bool               `yaml:"center"`
	Cursor             [3]float64         `yaml:"cursor,flow"`
	Collection         string             `yaml:"collection,omitempty"`
}

// Default returns the package defaults.
func Default() Config {
	return Config{
		CutoffMultiplier: neighbor.DefaultMultiplier,
		Skin:             bond.DefaultSkin,
		Style: Style{
			Name:          bond.StyleFrustum,
			ScaleFactor:   bond.DefaultScaleFactor,
			Vertices:      bond.DefaultVertices,
			FlareFraction: bond.DefaultFlareFraction,
		},
		SingletonMaterials: true,
		Center:             true,
	}
}

// Parse decodes YAML on top of Default and validates the result.
// Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func invalid(field string, v any, why string) error {
	return fmt.Errorf("%s=%v: %s: %w", field, v, why, ErrInvalidConfig)
}

// Validate checks every value against the option constructors' ranges,
// so converting a valid Config never panics.
func (c Config) Validate() error {
	var errs []error
	if !(c.CutoffMultiplier > 0) || !finite(c.CutoffMultiplier) {
		errs = append(errs, invalid("cutoff_multiplier", c.CutoffMultiplier, "must be finite and > 0"))
	}
	if !(c.Skin >= 0) || !finite(c.Skin) {
		errs = append(errs, invalid("skin", c.Skin, "must be finite and >= 0"))
	}
	for _, sym := range c.overrideSymbols() {
		if _, err := element.Lookup(sym); err != nil {
			errs = append(errs, invalid("overrides", sym, err.Error()))
		}
		if r := c.Overrides[sym]; !(r >= 0) || !finite(r) {
			errs = append(errs, invalid("overrides."+sym, r, "must be finite and >= 0"))
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.Style.Name)) {
	case "", bond.StyleFrustum, bond.StyleConic:
	default:
		errs = append(errs, invalid("style.name", c.Style.Name, "unknown style"))
	}
	if !(c.Style.ScaleFactor > 0) || !finite(c.Style.ScaleFactor) {
		errs = append(errs, invalid("style.scale_factor", c.Style.ScaleFactor, "must be finite and > 0"))
	}
	if c.Style.Vertices < 3 {
		errs = append(errs, invalid("style.vertices", c.Style.Vertices, "need at least 3"))
	}
	if !(c.Style.FlareFraction >= 0 && c.Style.FlareFraction <= 0.5) {
		errs = append(errs, invalid("style.flare_fraction", c.Style.FlareFraction, "must be in [0,0.5]"))
	}
	for _, v := range c.Cursor {
		if !finite(v) {
			errs = append(errs, invalid("cursor", c.Cursor, "must be finite"))

			break
		}
	}

	return errors.Join(errs...)
}

// overrideSymbols returns the override keys in a stable order.
func (c Config) overrideSymbols() []string {
	syms := make([]string, 0, len(c.Overrides))
	for sym := range c.Overrides {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	return syms
}

// NeighborOptions returns the cutoff derivation options.
func (c Config) NeighborOptions() []neighbor.CutoffOption {
	opts := []neighbor.CutoffOption{
		neighbor.WithMultiplier(c.CutoffMultiplier),
		neighbor.WithSkin(c.Skin),
	}
	for _, sym := range c.overrideSymbols() {
		opts = append(opts, neighbor.WithOverride(sym, c.Overrides[sym]))
	}

	return opts
}

// BondStyle builds the configured style.
func (c Config) BondStyle() (bond.Style, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return bond.StyleByName(c.Style.Name,
		bond.WithScaleFactor(c.Style.ScaleFactor),
		bond.WithVertices(c.Style.Vertices),
		bond.WithFlareFraction(c.Style.FlareFraction))
}

// BondOptions returns the options of bond.NewCollection.
func (c Config) BondOptions() ([]bond.Option, error) {
	st, err := c.BondStyle()
	if err != nil {
		return nil, err
	}

	return []bond.Option{bond.WithStyle(st), bond.WithNeighborOptions(c.NeighborOptions()...)}, nil
}

// SessionOptions returns the options of scene.NewSession.
func (c Config) SessionOptions() []scene.SessionOption {
	return []scene.SessionOption{scene.WithSingletonMaterials(c.SingletonMaterials)}
}

// ImportOptions returns the options of scene.NewImporter.
func (c Config) ImportOptions() ([]scene.ImportOption, error) {
	st, err := c.BondStyle()
	if err != nil {
		return nil, err
	}
	opts := []scene.ImportOption{
		scene.WithStyle(st),
		scene.WithCursor(r3.Vec{X: c.Cursor[0], Y: c.Cursor[1], Z: c.Cursor[2]}),
		scene.WithCenter(c.Center),
		scene.WithBondOptions(bond.WithNeighborOptions(c.NeighborOptions()...)),
	}
	if c.Collection != "" {
		opts = append(opts, scene.WithCollection(c.Collection))
	}

	return opts, nil
}
