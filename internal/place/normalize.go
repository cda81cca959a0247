package place

import (
	"strconv"
	"strings"
)

// Document is the raw record shape the Kakao keyword search returns.  The
// shape is externally supplied and untrusted: any field may be blank or
// malformed, and coordinates arrive as strings.
type Document struct {
	PlaceName       string `json:"place_name"`
	RoadAddressName string `json:"road_address_name"`
	AddressName     string `json:"address_name"`
	X               string `json:"x"` // longitude
	Y               string `json:"y"` // latitude
}

// Candidate is a normalized place-search result.
type Candidate struct {
	Label string  `json:"label"` // "{name} — {address}" for display in the picker
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Normalize validates and reshapes raw documents into candidates.  A record
// missing its name or either coordinate, or carrying a non-numeric
// coordinate, is skipped; one bad record never fails the batch.  Order is
// preserved among the surviving records, so the result may be shorter than
// the input.
func Normalize(docs []Document) []Candidate {
	out := []Candidate{}
	for _, d := range docs {
		name := strings.TrimSpace(d.PlaceName)
		if name == "" || strings.TrimSpace(d.X) == "" || strings.TrimSpace(d.Y) == "" {
			continue
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(d.X), 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(d.Y), 64)
		if err != nil {
			continue
		}
		out = append(out, Candidate{
			Label: label(name, d),
			Name:  name,
			Lat:   lat,
			Lng:   lng,
		})
	}
	return out
}

// label derives the display label, preferring the road-form address over the
// general one.  With neither present the label is just the name.
func label(name string, d Document) string {
	addr := strings.TrimSpace(d.RoadAddressName)
	if addr == "" {
		addr = strings.TrimSpace(d.AddressName)
	}
	if addr == "" {
		return name
	}
	return name + " — " + addr
}
