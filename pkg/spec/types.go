package spec

// Config is the input record for the neighborhood generator.
type Config struct {
	Count     int     `yaml:"count" toml:"count" json:"count"`
	Spread    float64 `yaml:"spread" toml:"spread" json:"spread"`
	MaxHeight float64 `yaml:"max_height" toml:"max_height" json:"max_height"`
	Seed      int64   `yaml:"seed" toml:"seed" json:"seed"`
}

// Default values match the initial state of the configurator page.
const (
	DefaultCount     = 64
	DefaultSpread    = 18.0
	DefaultMaxHeight = 8.0
	DefaultSeed      = 1
)

// Control ranges exposed by the configurator page. Values outside them are
// accepted by the generator.
const (
	CountMin     = 16
	CountMax     = 144
	CountStep    = 8
	SpreadMin    = 10.0
	SpreadMax    = 30.0
	SpreadStep   = 2.0
	MaxHeightMin = 4.0
	MaxHeightMax = 14.0
)

// Hard limits on the geometric inputs. Derived extents stay finite well
// inside them, so every layout encodes to JSON.
const (
	SpreadLimit    = 1e6
	MaxHeightLimit = 1e6
)

// Default returns the configurator's initial config.
func Default() Config {
	return Config{
		Count:     DefaultCount,
		Spread:    DefaultSpread,
		MaxHeight: DefaultMaxHeight,
		Seed:      DefaultSeed,
	}
}

// Regenerate returns a copy with the seed advanced by one, the only way
// the configurator asks for a new layout at the same density. The result
// wraps to a signed 32-bit value, so it always passes validation.
func (c Config) Regenerate() Config {
	c.Seed = int64(int32(uint32(c.Seed) + 1))
	return c
}
