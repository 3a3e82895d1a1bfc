package units

import "fmt"

// Config is the unit configuration active for one block of source text.
// It is reset to [DefaultConfig] whenever a new block starts.
type Config struct {
	Range    Unit
	Altitude Unit
	Angle    Unit
}

// DefaultConfig returns yards, feet and degrees.
func DefaultConfig() Config {
	return Config{Range: Yards, Altitude: Feet, Angle: Degrees}
}

// Set overrides the unit for family f. Unknown names leave c unchanged.
func (c *Config) Set(f Family, name string) error {
	u, ok := Lookup(f, name)
	if !ok {
		return fmt.Errorf("unknown %s unit %q", f, name)
	}
	switch f {
	case Range:
		c.Range = u
	case Altitude:
		c.Altitude = u
	case Angle:
		c.Angle = u
	}
	return nil
}

// Unit returns the unit currently configured for f.
func (c Config) Unit(f Family) Unit {
	switch f {
	case Altitude:
		return c.Altitude
	case Angle:
		return c.Angle
	}
	return c.Range
}

// ToBase converts v using the unit configured for f.
func (c Config) ToBase(f Family, v float64) float64 {
	return c.Unit(f).ToBase(v)
}
