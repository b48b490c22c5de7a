// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lbmstencil/velocity"
)

// Config is the configuration mapping a Set is built from.
//
// In YAML:
//
//	dim: 2                 # optional when box is given
//	box: {x: [0, 1], y: [0, 1]}
//	number_of_schemes: 2   # informational
//	0: {velocities: [0, 1, 2, 3, 4, 5, 6, 7, 8]}
//	1: {velocities: [0, 2, 4, 5, 1]}
type Config struct {
	// Dim is the spatial dimension; 0 means "not given, infer from Box".
	Dim int
	// Box is the computational domain; only the presence of its axes is used.
	Box *Box
	// NumberOfSchemes is informational; the elementary stencils are counted
	// by scanning Schemes from key 0.
	NumberOfSchemes int
	// Schemes holds the elementary stencils by their integer key.
	Schemes map[int]Scheme
}

// Box describes the domain extents. A nil axis is absent.
type Box struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
	Z []float64 `yaml:"z"`
}

// Scheme is one elementary stencil entry of the configuration.
type Scheme struct {
	Velocities []int `yaml:"velocities"`
}

// ParseConfig decodes a YAML configuration mapping.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("stencil: yaml unmarshal: %w", err)
	}

	return cfg, nil
}

// UnmarshalYAML decodes the mixed mapping: named keys plus integer keys for
// the elementary stencils. Unknown named keys are ignored.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("stencil: line %d: configuration must be a mapping", value.Line)
	}
	out := Config{Schemes: make(map[int]Scheme)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		var err error
		switch key.Value {
		case "dim":
			err = val.Decode(&out.Dim)
		case "box":
			out.Box = new(Box)
			err = val.Decode(out.Box)
		case "number_of_schemes":
			err = val.Decode(&out.NumberOfSchemes)
		default:
			k, convErr := strconv.Atoi(key.Value)
			if convErr != nil {
				continue
			}
			var s Scheme
			err = val.Decode(&s)
			out.Schemes[k] = s
		}
		if err != nil {
			return fmt.Errorf("stencil: key %q: %w", key.Value, err)
		}
	}
	*c = out

	return nil
}

// Dimension returns the explicit Dim when given, otherwise 1 plus one per
// y and z axis present in Box (x is required).
// Returns ErrBadDimension or ErrUnknownDimension.
func (c Config) Dimension() (int, error) {
	if c.Dim != 0 {
		if c.Dim < velocity.MinDim || c.Dim > velocity.MaxDim {
			return 0, stencilErrorf("Dimension", ErrBadDimension)
		}

		return c.Dim, nil
	}
	if c.Box == nil || c.Box.X == nil {
		return 0, stencilErrorf("Dimension", ErrUnknownDimension)
	}
	dim := 1
	if c.Box.Y != nil {
		dim++
	}
	if c.Box.Z != nil {
		dim++
	}

	return dim, nil
}

// Velocities returns the velocity numbers of the elementary stencils 0, 1, ...
// up to the first missing key.
func (c Config) Velocities() [][]int {
	var out [][]int
	for k := 0; ; k++ {
		s, ok := c.Schemes[k]
		if !ok {
			return out
		}
		out = append(out, s.Velocities)
	}
}
