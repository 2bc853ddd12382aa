package postgres

import (
	"context"

	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// libraryRepository implements the domain.LibraryRepository interface using GORM.
type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository is the constructor for libraryRepository.
func NewLibraryRepository(db *gorm.DB) repository.LibraryRepository {
	return &libraryRepository{db: db}
}

// FindByUser retrieves a user's library entries, newest acquisition first,
// with the catalog record preloaded on each entry.
func (repo *libraryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LibraryEntry, error) {
	var entryModels []*model.UserGameModel
	if err := repo.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("acquired_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list library entries")
	}

	entries := make([]*entity.LibraryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLibraryEntryDomain(entryM))
	}

	return entries, nil
}

// FindByUserAndGame retrieves a single entry by its composite key.
func (repo *libraryRepository) FindByUserAndGame(ctx context.Context, userID, gameID uuid.UUID) (*entity.LibraryEntry, error) {
	var entryM model.UserGameModel
	err := repo.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLibraryEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find library entry")
	}

	return toLibraryEntryDomain(&entryM), nil
}

// Create persists a new ownership record.
func (repo *libraryRepository) Create(ctx context.Context, entry *entity.LibraryEntry) error {
	entryM := &model.UserGameModel{
		UserID:     entry.UserID,
		GameID:     entry.GameID,
		AcquiredAt: entry.AcquiredAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		// The composite primary key turns a double-add into a unique violation.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLibraryDuplicate.WrapMessage("entry already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrGameNotFound.WrapMessage("invalid game or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create library entry")
	}

	return nil
}

// Delete removes an ownership record by its composite key.
func (repo *libraryRepository) Delete(ctx context.Context, userID, gameID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.UserGameModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete library entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLibraryEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLibraryEntryDomain converts a GORM UserGameModel to a domain LibraryEntry entity.
func toLibraryEntryDomain(data *model.UserGameModel) *entity.LibraryEntry {
	if data == nil {
		return nil
	}

	return &entity.LibraryEntry{
		UserID:     data.UserID,
		GameID:     data.GameID,
		AcquiredAt: data.AcquiredAt,
		Game:       toGameDomain(data.Game),
	}
}
