package providers

import (
	"github.com/shopspring/decimal"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// SearchRequest: параметры GET /api/v1/providers.
type SearchRequest struct {
	Category string  `form:"category" binding:"required"`
	Lat      float64 `form:"lat"`
	Lng      float64 `form:"lng"`
	Sort     string  `form:"sort"`
	Refresh  bool    `form:"refresh"`
}

// Query переводит запрос в доменный, проверяя стратегию и опорную точку.
func (r SearchRequest) Query() (domain.DiscoveryQuery, error) {
	strategy, err := domain.ParseRankingStrategy(r.Sort)
	if err != nil {
		return domain.DiscoveryQuery{}, err
	}
	q := domain.DiscoveryQuery{
		Category:     r.Category,
		Reference:    domain.GeoPoint{Latitude: r.Lat, Longitude: r.Lng},
		Strategy:     strategy,
		ForceRefresh: r.Refresh,
	}
	return q, q.Validate()
}

// ProviderDTO: провайдер в ответе API.
type ProviderDTO struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	ServiceCategory     string           `json:"service_category"`
	Location            *domain.GeoPoint `json:"location,omitempty"`
	IsOnline            bool             `json:"is_online"`
	Price               float64          `json:"price"`
	PriceType           string           `json:"price_type,omitempty"`
	PriceDisplay        string           `json:"price_display"`
	Rating              float64          `json:"rating"`
	ReviewCount         int              `json:"review_count"`
	CompletedJobs       int              `json:"completed_jobs"`
	ResponseTimeMinutes int              `json:"response_time_minutes"`
	Tier                string           `json:"tier"`
	// DistanceKm == null, если расстояние неизвестно.
	DistanceKm       *float64 `json:"distance_km"`
	EstimatedArrival string   `json:"estimated_arrival"`
}

// SearchResponse: ответ GET /api/v1/providers.
type SearchResponse struct {
	Providers []ProviderDTO `json:"providers"`
	Strategy  string        `json:"strategy"`
	FromCache bool          `json:"from_cache"`
	IsOffline bool          `json:"is_offline"`
	Message   string        `json:"message,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// ErrorResponse: ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// priceDisplay форматирует цену в песо: "₱500.00" или "₱350.50/hr".
func priceDisplay(price float64, t domain.PriceType) string {
	s := "₱" + decimal.NewFromFloat(price).StringFixed(2)
	if t == domain.PricePerHour {
		s += "/hr"
	}
	return s
}

func toDTO(p domain.Provider) ProviderDTO {
	dto := ProviderDTO{
		ID:                  p.ID,
		Name:                p.Name,
		ServiceCategory:     p.ServiceCategory,
		Location:            p.Location,
		IsOnline:            p.IsOnline,
		Price:               p.Price,
		PriceType:           string(p.PriceType),
		PriceDisplay:        priceDisplay(p.Price, p.PriceType),
		Rating:              p.Rating,
		ReviewCount:         p.ReviewCount,
		CompletedJobs:       p.CompletedJobs,
		ResponseTimeMinutes: p.ResponseTimeMinutes,
		Tier:                p.LoyaltyTier().String(),
		EstimatedArrival:    p.EstimatedArrival,
	}
	if km, ok := p.Distance.Km(); ok {
		rounded := decimal.NewFromFloat(km).Round(1).InexactFloat64()
		dto.DistanceKm = &rounded
	}
	return dto
}

func toDTOs(list []domain.Provider) []ProviderDTO {
	out := make([]ProviderDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	return out
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
