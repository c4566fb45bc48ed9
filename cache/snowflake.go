package cache

import (
	"fmt"
	"strconv"
)

// Snowflake is the globally unique 64-bit identifier assigned to every
// entity at creation. Snowflakes are time-ordered, so sorting by identifier
// sorts by creation time.
type Snowflake uint64

// ParseSnowflake parses the base-10 string form of a snowflake.
//
// Returns:
//   - Snowflake: The parsed identifier
//   - error: ErrMissingID for an empty string, ErrMalformedID when the
//     input is not an unsigned 64-bit decimal integer
func ParseSnowflake(s string) (Snowflake, error) {
	if s == "" {
		return 0, ErrMissingID
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return Snowflake(n), nil
}

// String returns the base-10 string form of the snowflake, the
// representation used on the wire and in log output.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Identifiable is implemented by every entity held in a Registry.
type Identifiable interface {
	// SnowflakeID returns the entity's stable unique identifier.
	SnowflakeID() Snowflake
}

// Named extends Identifiable with the mutable display name used for
// secondary lookups. Names are not unique; several entities of the same
// kind may share one.
type Named interface {
	Identifiable

	// DisplayName returns the entity's current display name.
	DisplayName() string
}
