package domain

import "strings"

// Роли и статусы записей в коллекции пользователей.
const (
	RoleProvider   = "PROVIDER"
	StatusApproved = "approved"
)

// PriceType определяет, за что берётся цена.
type PriceType string

const (
	PricePerJob  PriceType = "per_job"
	PricePerHour PriceType = "per_hour"
)

// LoyaltyTier упорядочен: bronze < silver < gold < platinum < diamond.
type LoyaltyTier int

const (
	TierBronze LoyaltyTier = iota
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

var tierNames = [...]string{"bronze", "silver", "gold", "platinum", "diamond"}

func (t LoyaltyTier) String() string {
	if t < TierBronze || int(t) >= len(tierNames) {
		return tierNames[TierBronze]
	}
	return tierNames[t]
}

// ParseLoyaltyTier разбирает уровень без учёта регистра. Неизвестное значение считается bronze.
func ParseLoyaltyTier(s string) LoyaltyTier {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tierNames {
		if name == s {
			return LoyaltyTier(i)
		}
	}
	return TierBronze
}

// GeoPoint: координаты в градусах.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProviderRecord: авторитетная запись провайдера из документного хранилища.
type ProviderRecord struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	Status              string    `json:"status"`
	ServiceCategory     string    `json:"serviceCategory"`
	Location            *GeoPoint `json:"location,omitempty"`
	IsOnline            bool      `json:"isOnline"`
	Price               float64   `json:"price"`
	PriceType           PriceType `json:"priceType"`
	Rating              float64   `json:"rating"`
	ReviewCount         int       `json:"reviewCount"`
	CompletedJobs       int       `json:"completedJobs"`
	ResponseTimeMinutes int       `json:"responseTimeMinutes"`
	Tier                string    `json:"tier,omitempty"`
}

// Validate проверяет минимальные требования к записи перед сохранением.
func (r ProviderRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrInvalidProvider
	}
	return nil
}

// LoyaltyTier возвращает уровень лояльности записи.
func (r ProviderRecord) LoyaltyTier() LoyaltyTier {
	return ParseLoyaltyTier(r.Tier)
}

// Provider: проекция провайдера для выдачи, запись плюс вычисленные поля.
// Не хранится, пересобирается на каждый снимок ленты.
type Provider struct {
	ProviderRecord
	Distance         Distance
	EstimatedArrival string
}

// ProviderFilter: фильтр запроса к коллекции провайдеров.
type ProviderFilter struct {
	Role            string
	ServiceCategory string
	Status          string
	ProviderIDs     []string
}

// CategoryFilter: стандартный фильтр выдачи, одобренные провайдеры категории.
// Категория сравнивается как есть, регистр приводит только UI.
func CategoryFilter(category string) ProviderFilter {
	return ProviderFilter{
		Role:            RoleProvider,
		ServiceCategory: category,
		Status:          StatusApproved,
	}
}
