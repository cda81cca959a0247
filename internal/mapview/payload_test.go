package mapview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseyo/open-space-listing/internal/repository"
)

func TestBuild_ProjectsPoints(t *testing.T) {
	active := []repository.Event{
		{
			ID:            "e1",
			Title:         "같이 걷기",
			StartAt:       "2024-05-01 09:00:00",
			EndAt:         "2024-05-01 11:30:00",
			Address:       "포항시 북구",
			AddressDetail: "정문 앞",
			Lat:           36.0,
			Lng:           129.3,
		},
	}

	p := Build(active)
	require.Len(t, p.Points, 1)
	got := p.Points[0]
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, "같이 걷기", got.Title)
	assert.Equal(t, "포항시 북구", got.Address)
	assert.Equal(t, "정문 앞", got.AddressDetail)
	assert.Equal(t, "05/01 09:00–11:30", got.Period)
}

func TestBuild_CentroidIsArithmeticMean(t *testing.T) {
	active := []repository.Event{
		{ID: "a", Lat: 36.0, Lng: 129.0, StartAt: "2024-05-01 09:00:00", EndAt: "2024-05-01 10:00:00"},
		{ID: "b", Lat: 38.0, Lng: 127.0, StartAt: "2024-05-01 09:00:00", EndAt: "2024-05-01 10:00:00"},
	}

	p := Build(active)
	assert.InDelta(t, 37.0, p.Center.Lat, 1e-9)
	assert.InDelta(t, 128.0, p.Center.Lng, 1e-9)
}

func TestBuild_ZeroEventsFallsBackToAnchor(t *testing.T) {
	p := Build(nil)

	assert.Empty(t, p.Points)
	assert.NotNil(t, p.Points, "points serializes as [], not null")
	assert.Equal(t, AnchorLat, p.Center.Lat)
	assert.Equal(t, AnchorLng, p.Center.Lng)
	assert.False(t, math.IsNaN(p.Center.Lat))
	assert.False(t, math.IsNaN(p.Center.Lng))
}

func TestBuild_UnparsableWindowStillRenders(t *testing.T) {
	// The filter normally removes these, but the builder itself degrades to
	// the placeholder instead of failing.
	p := Build([]repository.Event{{ID: "e1", Lat: 1, Lng: 2, StartAt: "??", EndAt: "??"}})
	require.Len(t, p.Points, 1)
	assert.Equal(t, "-", p.Points[0].Period)
}
