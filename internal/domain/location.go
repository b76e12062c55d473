package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// locationRe matches "<lat>, <lon>" optionally followed by "- <address>",
// e.g. "-23.5505, -46.6333 - Centro de São Paulo". Numbers may omit the
// integer or fractional digits (".5", "1.").
var locationRe = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+))\s*,\s*([+-]?(?:\d+\.?\d*|\.\d+))\s*(?:-\s*(.*?))?\s*$`)

// Location is a WGS-84 point with an optional human-readable address.
// Coordinates is always [Longitude, Latitude]; build values with NewLocation
// so the two never disagree.
type Location struct {
	Latitude    float64    `json:"latitude" validate:"lat"`
	Longitude   float64    `json:"longitude" validate:"lng"`
	Address     string     `json:"address,omitempty"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewLocation returns a Location with Coordinates derived from lat and lon.
func NewLocation(lat, lon float64, address string) Location {
	return Location{
		Latitude:    lat,
		Longitude:   lon,
		Address:     strings.TrimSpace(address),
		Coordinates: [2]float64{lon, lat},
	}
}

// ParseLocation parses a location string of the form "<lat>, <lon>" with an
// optional " - <address>" suffix. It is purely syntactic: coordinates are not
// range-checked and the address is never geocoded. Only the first line is
// parsed; anything after a line break is ignored.
func ParseLocation(raw string) (Location, error) {
	line, _, _ := strings.Cut(strings.TrimLeft(raw, " \t\r\n"), "\n")
	m := locationRe.FindStringSubmatch(line)
	if m == nil {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocationFormat, raw)
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: latitude %q: %v", ErrInvalidLocationFormat, m[1], err)
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: longitude %q: %v", ErrInvalidLocationFormat, m[2], err)
	}

	return NewLocation(lat, lon, m[3]), nil
}

// FormatLocation renders loc in the form ParseLocation accepts, with six
// decimal places, which is what the map picker prefills.
func FormatLocation(loc Location) string {
	s := fmt.Sprintf("%.6f, %.6f", loc.Latitude, loc.Longitude)
	if loc.Address != "" {
		s += " - " + loc.Address
	}
	return s
}

// Validate checks that latitude is within [-90, 90] and longitude within
// [-180, 180].
func (l Location) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w: %s", ErrCoordinateOutOfRange, describeValidation(err))
	}
	return nil
}
