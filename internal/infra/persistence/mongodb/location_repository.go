package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Vets4Warriors/backend/internal/domain/entity"
	"github.com/Vets4Warriors/backend/internal/domain/query"
	"github.com/Vets4Warriors/backend/internal/domain/repository"
	"github.com/Vets4Warriors/backend/internal/infra/persistence/model"
)

const locationCollection = "locations"

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	collection *mongo.Collection
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *mongo.Database) repository.LocationRepository {
	return &locationRepository{
		collection: db.Collection(locationCollection),
	}
}

// Create persists a new location and fills in its store-assigned id.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := model.FromLocationDomain(location)
	locationM.ID = primitive.NewObjectID()

	if _, err := repo.collection.InsertOne(ctx, locationM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateName
		}

		return errors.Wrap(err, "failed to insert location")
	}

	location.ID = locationM.ID.Hex()

	return nil
}

// FindByID retrieves a location by its id.
func (repo *locationRepository) FindByID(ctx context.Context, id string) (*entity.Location, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrLocationNotFound
	}

	var locationM model.LocationModel
	if err := repo.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&locationM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return model.ToLocationDomain(&locationM), nil
}

// Query retrieves every location matching all predicates in the chain.
func (repo *locationRepository) Query(ctx context.Context, predicates []query.Predicate) ([]*entity.Location, error) {
	cursor, err := repo.collection.Find(ctx, predicatesToFilter(predicates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query locations")
	}
	defer cursor.Close(ctx)

	var locationModels []model.LocationModel
	if err := cursor.All(ctx, &locationModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for i := range locationModels {
		locations = append(locations, model.ToLocationDomain(&locationModels[i]))
	}

	return locations, nil
}

// Update applies a partial update; only non-nil patch fields are written.
func (repo *locationRepository) Update(ctx context.Context, id string, patch *entity.LocationPatch) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrLocationNotFound
	}

	set := patchToSet(patch)
	if len(set) == 0 {
		return nil
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateName
		}

		return errors.Wrap(err, "failed to update location")
	}

	if result.MatchedCount == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// Delete removes a location together with its embedded ratings.
func (repo *locationRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrLocationNotFound
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	if result.DeletedCount == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// AppendRating appends a rating with a single atomic $push, avoiding
// read-modify-write so concurrent raters cannot lose updates.
func (repo *locationRepository) AppendRating(ctx context.Context, id string, rating *entity.Rating) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrLocationNotFound
	}

	result, err := repo.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$push": bson.M{"ratings": model.FromRatingDomain(rating)}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to append rating")
	}

	if result.MatchedCount == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

func patchToSet(patch *entity.LocationPatch) bson.M {
	set := bson.M{}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = model.FromAddressDomain(patch.Address)
	}
	if patch.HQAddress != nil {
		set["hqAddress"] = model.FromAddressDomain(patch.HQAddress)
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.LocationType != nil {
		set["locationType"] = *patch.LocationType
	}
	if patch.Coverages != nil {
		coverages := make([]string, 0, len(*patch.Coverages))
		for _, c := range *patch.Coverages {
			coverages = append(coverages, c.String())
		}
		set["coverages"] = coverages
	}
	if patch.Services != nil {
		set["services"] = *patch.Services
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.Comments != nil {
		set["comments"] = *patch.Comments
	}

	return set
}
