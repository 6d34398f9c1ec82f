package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// providerDoc: документ пользователя с ролью PROVIDER в коллекции users.
type providerDoc struct {
	ID                  string       `bson:"_id"`
	Name                string       `bson:"name"`
	Role                string       `bson:"role"`
	Status              string       `bson:"status"`
	ServiceCategory     string       `bson:"serviceCategory"`
	Location            *locationDoc `bson:"location,omitempty"`
	IsOnline            bool         `bson:"isOnline"`
	Price               float64      `bson:"price"`
	PriceType           string       `bson:"priceType,omitempty"`
	Rating              float64      `bson:"rating"`
	ReviewCount         int          `bson:"reviewCount"`
	CompletedJobs       int          `bson:"completedJobs"`
	ResponseTimeMinutes int          `bson:"responseTimeMinutes"`
	Tier                string       `bson:"tier,omitempty"`
}

type locationDoc struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

func toDoc(r domain.ProviderRecord) providerDoc {
	d := providerDoc{
		ID:                  r.ID,
		Name:                r.Name,
		Role:                r.Role,
		Status:              r.Status,
		ServiceCategory:     r.ServiceCategory,
		IsOnline:            r.IsOnline,
		Price:               r.Price,
		PriceType:           string(r.PriceType),
		Rating:              r.Rating,
		ReviewCount:         r.ReviewCount,
		CompletedJobs:       r.CompletedJobs,
		ResponseTimeMinutes: r.ResponseTimeMinutes,
		Tier:                r.Tier,
	}
	if r.Location != nil {
		d.Location = &locationDoc{Latitude: r.Location.Latitude, Longitude: r.Location.Longitude}
	}
	return d
}

func (d providerDoc) toDomain() domain.ProviderRecord {
	r := domain.ProviderRecord{
		ID:                  d.ID,
		Name:                d.Name,
		Role:                d.Role,
		Status:              d.Status,
		ServiceCategory:     d.ServiceCategory,
		IsOnline:            d.IsOnline,
		Price:               d.Price,
		PriceType:           domain.PriceType(d.PriceType),
		Rating:              d.Rating,
		ReviewCount:         d.ReviewCount,
		CompletedJobs:       d.CompletedJobs,
		ResponseTimeMinutes: d.ResponseTimeMinutes,
		Tier:                d.Tier,
	}
	if d.Location != nil {
		r.Location = &domain.GeoPoint{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude}
	}
	return r
}

// filterDoc переводит фильтр в запрос: равенство по заданным полям, опционально _id из списка.
func filterDoc(f domain.ProviderFilter) bson.D {
	q := bson.D{}
	if f.Role != "" {
		q = append(q, bson.E{Key: "role", Value: f.Role})
	}
	if f.ServiceCategory != "" {
		q = append(q, bson.E{Key: "serviceCategory", Value: f.ServiceCategory})
	}
	if f.Status != "" {
		q = append(q, bson.E{Key: "status", Value: f.Status})
	}
	if len(f.ProviderIDs) > 0 {
		q = append(q, bson.E{Key: "_id", Value: bson.D{{Key: "$in", Value: f.ProviderIDs}}})
	}
	return q
}
