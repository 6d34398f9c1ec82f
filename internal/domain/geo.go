package domain

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusKm используется в формуле гаверсинуса.
	EarthRadiusKm = 6371.0
	// UnknownDistanceKm: значение расстояния для сортировки, когда координаты неизвестны.
	UnknownDistanceKm = 999.0
	// DefaultTravelSpeedKmh: средняя скорость для оценки времени прибытия.
	DefaultTravelSpeedKmh = 30.0
	// ArrivalUnknown показывается вместо ETA, если расстояние неизвестно.
	ArrivalUnknown = "N/A"
)

// Distance: расстояние до провайдера, которое может быть неизвестно.
type Distance struct {
	km    float64
	known bool
}

// KnownDistance создаёт известное расстояние.
func KnownDistance(km float64) Distance {
	return Distance{km: km, known: true}
}

// UnknownDistance создаёт неизвестное расстояние.
func UnknownDistance() Distance {
	return Distance{}
}

// Km возвращает расстояние и признак того, что оно известно.
func (d Distance) Km() (float64, bool) {
	return d.km, d.known
}

// SortKey возвращает значение для сортировки и скоринга: 999 для неизвестного расстояния.
func (d Distance) SortKey() float64 {
	if !d.known {
		return UnknownDistanceKm
	}
	return d.km
}

// ComputeDistanceKm считает расстояние по большому кругу (гаверсинус) в километрах.
// Если хотя бы одна координата равна нулю, возвращает UnknownDistanceKm.
func ComputeDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	d := distanceBetween(lat1, lon1, lat2, lon2)
	return d.SortKey()
}

// DistanceBetween возвращает расстояние между точками; nil-точка даёт неизвестное расстояние.
func DistanceBetween(from, to *GeoPoint) Distance {
	if from == nil || to == nil {
		return UnknownDistance()
	}
	return distanceBetween(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func distanceBetween(lat1, lon1, lat2, lon2 float64) Distance {
	for _, v := range [...]float64{lat1, lon1, lat2, lon2} {
		if v == 0 || math.IsNaN(v) {
			return UnknownDistance()
		}
	}
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return KnownDistance(EarthRadiusKm * c)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// EstimateArrival оценивает время прибытия при скорости DefaultTravelSpeedKmh.
func EstimateArrival(distanceKm float64) string {
	return EstimateArrivalAt(distanceKm, DefaultTravelSpeedKmh)
}

// EstimateArrivalAt оценивает время прибытия при заданной скорости:
// "< 5 mins", "{m} mins" или "{h}h {m}m".
func EstimateArrivalAt(distanceKm, speedKmh float64) string {
	minutes := int(math.Round(distanceKm / speedKmh * 60))
	if minutes < 5 {
		return "< 5 mins"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d mins", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ArrivalFor форматирует ETA для расстояния; для неизвестного возвращает ArrivalUnknown.
func ArrivalFor(d Distance, speedKmh float64) string {
	km, ok := d.Km()
	if !ok {
		return ArrivalUnknown
	}
	return EstimateArrivalAt(km, speedKmh)
}
