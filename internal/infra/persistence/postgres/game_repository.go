package postgres

import (
	"context"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"
	"gamevault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gameRepository implements the domain.GameRepository interface using GORM.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// FindByID retrieves a single catalog game by its unique ID.
func (repo *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&gameM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by id")
	}

	return toGameDomain(&gameM), nil
}

// FindAll retrieves the full catalog ordered by title ascending.
func (repo *gameRepository) FindAll(ctx context.Context) ([]*entity.Game, error) {
	var gameModels []*model.GameModel
	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list games")
	}

	games := make([]*entity.Game, 0, len(gameModels))
	for _, gameM := range gameModels {
		games = append(games, toGameDomain(gameM))
	}

	return games, nil
}

// --- Mapper Functions ---

// toGameDomain converts a GORM GameModel to a domain Game entity.
func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	return &entity.Game{
		ID:        data.ID,
		Title:     data.Title,
		Platform:  data.Platform,
		Price:     data.Price,
		Publisher: data.Publisher,
		CreatedAt: data.CreatedAt,
	}
}
