package kernel

import (
	"errors"
	"fmt"
	"math"

	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrCoordinatesAreNotConstructed is returned when using zero-value Coordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is a validated WGS84 latitude/longitude pair.
// Coordinates is an immutable value object; the zero value fails validation.
//
// Example:
//
//	ist, err := kernel.NewCoordinates(41.01, 28.97)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("%s", ist) // Output: Coordinates(41.0100,28.9700)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates, rejecting values outside
// [LatitudeMin..LatitudeMax] and [LongitudeMin..LongitudeMax] or NaN.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate checks that the Coordinates were built through NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.4f,%.4f)", c.latitude, c.longitude)
}

// DistanceKm returns the great-circle (haversine) distance between two points.
// Both values must be properly constructed.
//
// Example:
//
//	ist, _ := kernel.NewCoordinates(41.01, 28.97)
//	ank, _ := kernel.NewCoordinates(39.93, 32.86)
//	km, err := ist.DistanceKm(ank) // km ≈ 350
func (c Coordinates) DistanceKm(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(c.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLon := toRadians(other.longitude - c.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

// setLatitude uses a pointer receiver so the constructor can validate in place.
func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
