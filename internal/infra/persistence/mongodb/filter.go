package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Vets4Warriors/backend/internal/domain/query"
)

// predicatesToFilter translates the ordered predicate chain into a Mongo
// filter document. Predicates combine with $and; an empty chain matches all
// documents.
func predicatesToFilter(predicates []query.Predicate) bson.M {
	if len(predicates) == 0 {
		return bson.M{}
	}

	clauses := make(bson.A, 0, len(predicates))
	for _, p := range predicates {
		clauses = append(clauses, predicateToClause(p))
	}

	return bson.M{"$and": clauses}
}

func predicateToClause(p query.Predicate) bson.M {
	switch p.Op {
	case query.OpContainsFold:
		return bson.M{p.Field: bson.M{
			"$regex":   regexp.QuoteMeta(p.Text),
			"$options": "i",
		}}
	case query.OpIntersects:
		return bson.M{p.Field: bson.M{"$in": p.Set}}
	case query.OpWithinRadius:
		return bson.M{p.Field: bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{p.Radius.Center.Lon(), p.Radius.Center.Lat()},
				},
				"$maxDistance": p.Radius.Meters,
			},
		}}
	default:
		return bson.M{}
	}
}
