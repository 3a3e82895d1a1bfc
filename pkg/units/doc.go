// Package units converts unit-qualified numbers from overlay source text into
// the internal base units used by finalized shapes.
//
// Three unit families are configured independently:
//
//   - Range: radii, axis lengths and horizontal relative coordinates. Default
//     yards, normalized to meters.
//   - Altitude: heights, altitude offsets and vertical coordinates. Default
//     feet, normalized to meters.
//   - Angle: start, sweep and orientation angles. Default degrees,
//     normalized to radians.
//
// Geographic latitude and longitude are always degrees on input and are not
// governed by any family; use [DegreesToRadians].
//
// # Usage
//
//	cfg := units.DefaultConfig()
//	if err := cfg.Set(units.Range, "km"); err != nil {
//	    return err
//	}
//	meters := cfg.Range.ToBase(10) // 10000
package units
