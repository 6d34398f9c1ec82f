package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RankingStrategy: стратегия сортировки выдачи.
type RankingStrategy string

const (
	StrategyRecommended  RankingStrategy = "recommended"
	StrategyCheapest     RankingStrategy = "cheapest"
	StrategyNearest      RankingStrategy = "nearest"
	StrategyHighestRated RankingStrategy = "highest_rated"
)

// ParseRankingStrategy разбирает стратегию; пустая строка означает recommended.
func ParseRankingStrategy(s string) (RankingStrategy, error) {
	switch st := RankingStrategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StrategyRecommended, nil
	case StrategyRecommended, StrategyCheapest, StrategyNearest, StrategyHighestRated:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// ScoreWeights: веса составного рейтинга recommended.
type ScoreWeights struct {
	Rating        float64 `envconfig:"RATING" default:"2"`
	CompletedJobs float64 `envconfig:"COMPLETED_JOBS" default:"0.1"`
	Distance      float64 `envconfig:"DISTANCE" default:"0.5"`
}

// DefaultScoreWeights: score = rating*2 + completedJobs*0.1 - distanceKm*0.5.
var DefaultScoreWeights = ScoreWeights{Rating: 2, CompletedJobs: 0.1, Distance: 0.5}

// Score считает составной рейтинг провайдера. Неизвестное расстояние идёт как 999.
func (w ScoreWeights) Score(p Provider) float64 {
	return p.Rating*w.Rating + float64(p.CompletedJobs)*w.CompletedJobs - p.Distance.SortKey()*w.Distance
}

// Rank возвращает новый упорядоченный срез, вход не изменяется. Сортировка стабильная.
func Rank(providers []Provider, strategy RankingStrategy) []Provider {
	return DefaultScoreWeights.Rank(providers, strategy)
}

// Rank ранжирует с заданными весами для recommended.
func (w ScoreWeights) Rank(providers []Provider, strategy RankingStrategy) []Provider {
	out := slices.Clone(providers)
	if out == nil {
		out = []Provider{}
	}
	switch strategy {
	case StrategyCheapest:
		slices.SortStableFunc(out, func(a, b Provider) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case StrategyNearest:
		slices.SortStableFunc(out, func(a, b Provider) int {
			return cmp.Compare(a.Distance.SortKey(), b.Distance.SortKey())
		})
	case StrategyHighestRated:
		slices.SortStableFunc(out, func(a, b Provider) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	default:
		slices.SortStableFunc(out, func(a, b Provider) int {
			return cmp.Compare(w.Score(b), w.Score(a))
		})
	}
	return out
}
