package domain

import "time"

// SatelliteRecord is one daily satellite-derived summary for a kabupaten.
type SatelliteRecord struct {
	ID              int64     `json:"id" db:"id"`
	Kabupaten       string    `json:"kabupaten" db:"kabupaten"`
	RecordedOn      time.Time `json:"recorded_on" db:"recorded_on"`
	NDVIAvg         float64   `json:"ndvi_avg" db:"ndvi_avg"`
	EVIAvg          float64   `json:"evi_avg" db:"evi_avg"`
	LandSurfaceTemp float64   `json:"land_surface_temp" db:"land_surface_temp"`
	SoilMoisture    float64   `json:"soil_moisture" db:"soil_moisture"`
	RainfallMM      float64   `json:"rainfall_mm" db:"rainfall_mm"`
	CloudCoverage   float64   `json:"cloud_coverage" db:"cloud_coverage"`
	DataSource      string    `json:"data_source" db:"data_source"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// VegetationHealth buckets an NDVI average into the categories the
// dashboard displays.
func VegetationHealth(ndvi float64) string {
	switch {
	case ndvi >= 0.7:
		return "excellent"
	case ndvi >= 0.5:
		return "good"
	case ndvi >= 0.3:
		return "fair"
	default:
		return "poor"
	}
}

type WeatherRecord struct {
	ID          int64     `json:"id" db:"id"`
	Kabupaten   string    `json:"kabupaten" db:"kabupaten"`
	RecordedAt  time.Time `json:"recorded_at" db:"recorded_at"`
	Temperature float64   `json:"temperature" db:"temperature"`
	Humidity    float64   `json:"humidity" db:"humidity"`
	WindSpeed   float64   `json:"wind_speed" db:"wind_speed"`
	Pressure    float64   `json:"pressure" db:"pressure"`
	Rainfall    float64   `json:"rainfall" db:"rainfall"`
	WeatherDesc string    `json:"weather_desc" db:"weather_desc"`
	DataSource  string    `json:"data_source" db:"data_source"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
