package service

import (
	"math"

	"github.com/Vinayak4780/Guard/internal/domain"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters is the haversine great-circle distance between a and b,
// rounded to centimetres.
func DistanceMeters(a, b domain.GeoPoint) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusMeters*c*100) / 100
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
