package location

import "github.com/krishikendra/agri-data-service/internal/domain"

// DefaultPlace is the fallback location when nothing else resolves.
var DefaultPlace = domain.GeocodedPlace{Lat: 28.7041, Lon: 77.1025, Name: "New Delhi"}

// presetPlaces maps well-known region names to fixed coordinates, so the
// common picks resolve without any geocoding round trip. Keys are matched
// case-insensitively.
var presetPlaces = map[string]domain.GeocodedPlace{
	"delhi":          {Lat: 28.7041, Lon: 77.1025, Name: "Delhi"},
	"punjab":         {Lat: 31.1471, Lon: 75.3412, Name: "Punjab"},
	"haryana":        {Lat: 29.0588, Lon: 76.0856, Name: "Haryana"},
	"madhya pradesh": {Lat: 22.9734, Lon: 78.6569, Name: "Madhya Pradesh"},
	"karnataka":      {Lat: 15.3173, Lon: 75.7139, Name: "Karnataka"},
	"maharashtra":    {Lat: 19.7515, Lon: 75.7139, Name: "Maharashtra"},
	"uttar pradesh":  {Lat: 26.8467, Lon: 80.9462, Name: "Uttar Pradesh"},
	"gujarat":        {Lat: 22.2587, Lon: 71.1924, Name: "Gujarat"},
	"tamil nadu":     {Lat: 11.1271, Lon: 78.6569, Name: "Tamil Nadu"},
	"andhra pradesh": {Lat: 15.9129, Lon: 79.7400, Name: "Andhra Pradesh"},
}
