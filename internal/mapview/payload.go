// Package mapview projects active events into the point list the external
// map renderer consumes.
package mapview

import (
	"github.com/oseyo/open-space-listing/internal/event"
	"github.com/oseyo/open-space-listing/internal/repository"
)

// Default map center when there is nothing to show: the service's home
// region anchor (Pohang).  Falling back to a fixed point keeps the map
// renderable with zero events and avoids a division by zero in the centroid.
const (
	AnchorLat = 36.019
	AnchorLng = 129.343
)

// Point is one map marker with the info-panel fields the renderer needs.
type Point struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Address       string  `json:"address"`
	AddressDetail string  `json:"address_detail"`
	Period        string  `json:"period"` // formatted start/end window
}

// Center is the initial view coordinate.
type Center struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Payload is the full response for the map renderer.
type Payload struct {
	Points []Point `json:"points"`
	Center Center  `json:"center"`
}

// Build projects the given active events into markers and computes the
// centroid of their coordinates as the initial view.  The input is expected
// to be the already-filtered active set.
func Build(active []repository.Event) Payload {
	points := make([]Point, 0, len(active))
	for _, e := range active {
		points = append(points, Point{
			ID:            e.ID,
			Title:         e.Title,
			Lat:           e.Lat,
			Lng:           e.Lng,
			Address:       e.Address,
			AddressDetail: e.AddressDetail,
			Period:        event.FormatPeriod(e.StartAt, e.EndAt),
		})
	}
	return Payload{Points: points, Center: centroid(points)}
}

// centroid is the arithmetic mean of the point coordinates, or the fixed
// anchor when there are no points.
func centroid(points []Point) Center {
	if len(points) == 0 {
		return Center{Lat: AnchorLat, Lng: AnchorLng}
	}
	var latSum, lngSum float64
	for _, p := range points {
		latSum += p.Lat
		lngSum += p.Lng
	}
	n := float64(len(points))
	return Center{Lat: latSum / n, Lng: lngSum / n}
}
