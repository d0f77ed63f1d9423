// Package course reads race course files to derive the figures the plan
// generator cares about.
package course

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkrajina/gpxgo/gpx"
)

var ErrNoPoints = errors.New("the GPX file does not contain valid GPS points")

type Summary struct {
	Name       string
	DistanceKm float64
	Uphill     float64 // m
	Downhill   float64 // m
	Points     int
}

func LoadGPX(path string) (*Summary, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX file: %w", err)
	}
	return summarize(g)
}

func ParseGPX(data []byte) (*Summary, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX data: %w", err)
	}
	return summarize(g)
}

func summarize(g *gpx.GPX) (*Summary, error) {
	s := &Summary{Name: g.Name}

	var prev *gpx.GPXPoint
	var meters float64
	visit := func(p *gpx.GPXPoint) {
		if prev != nil {
			meters += prev.Distance2D(p)
			if prev.Elevation.NotNull() && p.Elevation.NotNull() {
				delta := p.Elevation.Value() - prev.Elevation.Value()
				if delta > 0 {
					s.Uphill += delta
				} else {
					s.Downhill -= delta
				}
			}
		}
		cp := *p
		prev = &cp
		s.Points++
	}

	for _, track := range g.Tracks {
		if s.Name == "" {
			s.Name = track.Name
		}
		for _, segment := range track.Segments {
			for i := range segment.Points {
				visit(&segment.Points[i])
			}
		}
	}

	// Routes only count when the file has no track.
	if s.Points == 0 {
		for _, route := range g.Routes {
			if s.Name == "" {
				s.Name = route.Name
			}
			for i := range route.Points {
				visit(&route.Points[i])
			}
		}
	}

	if s.Points < 2 {
		return nil, ErrNoPoints
	}

	s.DistanceKm = math.Round(meters/10) / 100
	s.Uphill = math.Round(s.Uphill)
	s.Downhill = math.Round(s.Downhill)
	return s, nil
}
