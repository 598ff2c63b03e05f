// Package geo holds small, pure coordinate helpers shared by the
// conversion paths. Nothing here touches the network or a CRS database.
package geo

import (
	"fmt"
	"math"
)

// ErrOutOfRange reports a point outside valid geographic bounds.
type ErrOutOfRange struct {
	Lat float64
	Lon float64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("point outside geographic bounds: lat=%g, lon=%g", e.Lat, e.Lon)
}

// ValidLatLon reports whether the point lies within [-90,90]x[-180,180].
func ValidLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ResolveUTMZone returns the EPSG code of the UTM zone containing the
// given geographic point: 326xx for the northern hemisphere, 327xx for
// the southern, where xx is the zone number in [1,60].
func ResolveUTMZone(lat, lon float64) (int, error) {
	if !ValidLatLon(lat, lon) {
		return 0, &ErrOutOfRange{Lat: lat, Lon: lon}
	}

	zone := int(math.Floor((lon+180)/6)) + 1
	// lon=180 lands in the last zone, not a phantom 61st
	if zone > 60 {
		zone = 60
	}
	if zone < 1 {
		zone = 1
	}

	if lat >= 0 {
		return 32600 + zone, nil
	}
	return 32700 + zone, nil
}

// EPSGString formats a numeric EPSG code the way the conversion engines
// expect it on the command line.
func EPSGString(code int) string {
	return fmt.Sprintf("EPSG:%d", code)
}

// Bounds is a geographic bounding box in the order the conversion
// engines report it.
type Bounds struct {
	MinX float64 `json:"minx"`
	MinY float64 `json:"miny"`
	MaxX float64 `json:"maxx"`
	MaxY float64 `json:"maxy"`
}

// Centroid returns the center point of the bounds as (lat, lon).
func (b Bounds) Centroid() (lat, lon float64) {
	return (b.MinY + b.MaxY) / 2, (b.MinX + b.MaxX) / 2
}
