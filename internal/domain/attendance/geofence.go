package attendance

import "math"

const earthRadiusM = 6371000.0

// Geofence adalah titik referensi kantor plus radius maksimum (meter)
// untuk absensi mandiri.
type Geofence struct {
	Latitude  float64
	Longitude float64
	RadiusM   float64
}

// HaversineMeters menghitung jarak great-circle antara dua koordinat.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (g Geofence) DistanceFrom(lat, lon float64) float64 {
	return HaversineMeters(g.Latitude, g.Longitude, lat, lon)
}
