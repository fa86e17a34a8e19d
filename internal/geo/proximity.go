package geo

import (
	"math"
	"sort"

	apperrors "healthcare/internal/errors"
)

const (
	EarthRadiusKm   = 6371.0
	DefaultRadiusKm = 50.0
)

// Point is a WGS 84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Locatable is implemented by anything that can be placed on the map.
// ok is false when the entity has no stored coordinates.
type Locatable interface {
	Coordinates() (p Point, ok bool)
}

// Annotated pairs an item with its distance from the search origin.
// DistanceKm is nil when the search had no origin.
type Annotated[T any] struct {
	Item       T
	DistanceKm *float64
}

type Config struct {
	EarthRadiusKm   float64
	DefaultRadiusKm float64
}

func DefaultConfig() Config {
	return Config{EarthRadiusKm: EarthRadiusKm, DefaultRadiusKm: DefaultRadiusKm}
}

// Validate rejects coordinates outside [-90,90] x [-180,180].
func Validate(p Point) error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return apperrors.InvalidArgument("latitude %v out of range [-90, 90]", p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return apperrors.InvalidArgument("longitude %v out of range [-180, 180]", p.Lon)
	}
	return nil
}

// Haversine returns the great-circle distance between a and b on a sphere of radiusKm.
func Haversine(a, b Point, radiusKm float64) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Lat))*math.Cos(degreesToRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return radiusKm * c
}

// Distance is Haversine with the configured Earth radius.
func (c Config) Distance(a, b Point) float64 {
	r := c.EarthRadiusKm
	if r <= 0 {
		r = EarthRadiusKm
	}
	return Haversine(a, b, r)
}

// Round2 rounds to two decimal places, the precision shown to users.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Filter keeps the items within maxDistanceKm of origin, nearest first.
//
// With a nil origin nothing is computed: every item comes back in input order
// with a nil distance. With an origin, items lacking coordinates are dropped,
// the radius test runs on the unrounded distance and ties keep input order.
func Filter[T Locatable](cfg Config, origin *Point, items []T, maxDistanceKm float64) ([]Annotated[T], error) {
	if math.IsNaN(maxDistanceKm) || maxDistanceKm <= 0 {
		return nil, apperrors.InvalidArgument("max distance must be greater than zero, got %v", maxDistanceKm)
	}

	if origin == nil {
		out := make([]Annotated[T], len(items))
		for i, item := range items {
			out[i] = Annotated[T]{Item: item}
		}
		return out, nil
	}

	if err := Validate(*origin); err != nil {
		return nil, err
	}

	type candidate struct {
		item     T
		distance float64
	}
	var kept []candidate
	for _, item := range items {
		p, ok := item.Coordinates()
		if !ok {
			continue
		}
		if err := Validate(p); err != nil {
			return nil, err
		}
		d := cfg.Distance(*origin, p)
		if d <= maxDistanceKm {
			kept = append(kept, candidate{item: item, distance: d})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].distance < kept[j].distance
	})

	out := make([]Annotated[T], len(kept))
	for i, c := range kept {
		d := Round2(c.distance)
		out[i] = Annotated[T]{Item: c.item, DistanceKm: &d}
	}
	return out, nil
}

// Nearest returns the closest item within maxDistanceKm, or false when none qualifies.
func Nearest[T Locatable](cfg Config, origin Point, items []T, maxDistanceKm float64) (Annotated[T], bool, error) {
	found, err := Filter(cfg, &origin, items, maxDistanceKm)
	if err != nil || len(found) == 0 {
		return Annotated[T]{}, false, err
	}
	return found[0], true, nil
}
