package databases

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
}

// newMongoPaginate takes a zero based page and a page size
func newMongoPaginate(limit, page int64) *mongoPaginate {
	return &mongoPaginate{
		limit: limit,
		page:  page,
	}
}

func (mp *mongoPaginate) getPaginatedOpts(sortField string) *options.FindOptions {
	l := mp.limit
	var skip int64
	if mp.limit > 0 && mp.page > 0 {
		// saturate instead of overflowing into a negative skip
		skip = math.MaxInt64
		if mp.page <= math.MaxInt64/mp.limit {
			skip = mp.page * mp.limit
		}
	}
	return options.Find().
		SetLimit(l).
		SetSkip(skip).
		SetSort(bson.D{{Key: sortField, Value: -1}})
}
