package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// CityMaxLength is the maximum accepted length of a city name.
const CityMaxLength = 120

// ErrCityIsNotConstructed is returned when attempting to use an improperly
// initialized City. Cities must be created via NewCity to ensure the name
// is normalized.
var ErrCityIsNotConstructed = errs.NewValueIsRequiredError(
	"city must be created via NewCity constructor")

// City is an immutable value object holding a shipping city name.
//
// The name is normalized at construction: surrounding whitespace is
// trimmed and internal runs of whitespace are collapsed to single spaces.
// Matching between cities is case-insensitive via Key(), so "London",
// " london " and "LONDON" all group into the same delivery route.
//
// The zero value of City is invalid and fails validation; use NewCity.
//
// Example:
//
//	city, err := kernel.NewCity("  London ")
//	if err != nil {
//	    // handle validation error
//	}
//	city.Name() // "London"
//	city.Key()  // "london"
type City struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewCity creates a City from a raw name, normalizing whitespace.
// Returns an error when the trimmed name is empty or exceeds CityMaxLength.
func NewCity(name string) (City, error) {
	normalized := strings.Join(strings.Fields(name), " ")
	if normalized == "" {
		return City{}, errs.NewValueIsRequiredError("city")
	}
	if len(normalized) > CityMaxLength {
		return City{}, errs.NewValueIsOutOfRangeError("city length", len(normalized), 1, CityMaxLength)
	}

	return City{
		name:  normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the City was constructed via NewCity.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// Name returns the normalized city name with its original casing.
func (c City) Name() string {
	return c.name
}

// Key returns the case-insensitive match key used to group orders and
// routes belonging to the same city.
func (c City) Key() string {
	return strings.ToLower(c.name)
}

// IsEqual reports whether two cities refer to the same match key.
// Both cities must be properly constructed.
func (c City) IsEqual(other City) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return c.Key() == other.Key(), nil
}

// String implements fmt.Stringer, returning the normalized name.
func (c City) String() string {
	return c.name
}
