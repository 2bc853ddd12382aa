package mongo

import (
	"context"
	"time"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gameConfigCollection = "game_configs"

// gameConfigDocument is the stored shape of a settings document. UUIDs are
// stored as their string form so the compound index stays readable.
type gameConfigDocument struct {
	UserID    string         `bson:"userId"`
	GameID    string         `bson:"gameId"`
	Settings  map[string]any `bson:"settings"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

// gameConfigRepository implements the domain.GameConfigRepository interface
// on top of a MongoDB collection keyed by (userId, gameId).
type gameConfigRepository struct {
	collection *mongo.Collection
}

// NewGameConfigRepository is the constructor for gameConfigRepository.
func NewGameConfigRepository(db *mongo.Database) repository.GameConfigRepository {
	return &gameConfigRepository{
		collection: db.Collection(gameConfigCollection),
	}
}

// Upsert creates or replaces the settings document for a (user, game) pair.
func (repo *gameConfigRepository) Upsert(ctx context.Context, config *entity.GameConfig) (*entity.GameConfig, error) {
	doc := fromGameConfigDomain(config)

	filter := bson.M{"userId": doc.UserID, "gameId": doc.GameID}
	if _, err := repo.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return nil, errors.Wrap(err, "failed to upsert game config")
	}

	return toGameConfigDomain(doc)
}

// Find retrieves the settings document for a (user, game) pair.
func (repo *gameConfigRepository) Find(ctx context.Context, userID, gameID uuid.UUID) (*entity.GameConfig, error) {
	filter := bson.M{"userId": userID.String(), "gameId": gameID.String()}

	var doc gameConfigDocument
	err := repo.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrGameConfigNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find game config")
	}

	return toGameConfigDomain(&doc)
}

// ListByUser retrieves all of a user's settings documents, most recently
// updated first.
func (repo *gameConfigRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GameConfig, error) {
	filter := bson.M{"userId": userID.String()}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list game configs")
	}
	defer cursor.Close(ctx)

	var configs []*entity.GameConfig
	for cursor.Next(ctx) {
		var doc gameConfigDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode game config")
		}

		config, err := toGameConfigDomain(&doc)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate game configs")
	}

	return configs, nil
}

// Delete removes the settings document for a (user, game) pair.
// Deleting a missing document is not an error.
func (repo *gameConfigRepository) Delete(ctx context.Context, userID, gameID uuid.UUID) error {
	filter := bson.M{"userId": userID.String(), "gameId": gameID.String()}
	if _, err := repo.collection.DeleteOne(ctx, filter); err != nil {
		return errors.Wrap(err, "failed to delete game config")
	}

	return nil
}

// --- Mapper Functions ---

func toGameConfigDomain(doc *gameConfigDocument) (*entity.GameConfig, error) {
	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse stored user id")
	}
	gameID, err := uuid.Parse(doc.GameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse stored game id")
	}

	settings := doc.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	return &entity.GameConfig{
		UserID:    userID,
		GameID:    gameID,
		Settings:  settings,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func fromGameConfigDomain(config *entity.GameConfig) *gameConfigDocument {
	settings := config.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	return &gameConfigDocument{
		UserID:    config.UserID.String(),
		GameID:    config.GameID.String(),
		Settings:  settings,
		UpdatedAt: config.UpdatedAt,
	}
}
