package usecase

import (
	"context"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveGameConfigInput defines a settings document to create or replace.
type SaveGameConfigInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	GameID       uuid.UUID
	Settings     map[string]any
}

// GetGameConfigInput names a single settings document to read.
type GetGameConfigInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	GameID       uuid.UUID
}

// ListGameConfigsInput names whose settings documents to read.
type ListGameConfigsInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
}

// RemoveGameConfigInput names a single settings document to remove.
type RemoveGameConfigInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	GameID       uuid.UUID
}

// SaveGameConfigOutput returns the stored settings document.
type SaveGameConfigOutput struct {
	Config *entity.GameConfig
}

// GetGameConfigOutput returns a single settings document.
type GetGameConfigOutput struct {
	Config *entity.GameConfig
}

// ListGameConfigsOutput returns a user's settings documents, most recently
// updated first.
type ListGameConfigsOutput struct {
	Configs []*entity.GameConfig
}

// RemoveGameConfigOutput names the document the removal targeted.
type RemoveGameConfigOutput struct {
	UserID uuid.UUID
	GameID uuid.UUID
}

// GameConfigUsecase defines the per-user per-game settings operations.
// Writes are owner-only: admins may read any user's settings but never
// modify them.
type GameConfigUsecase interface {
	// SaveGameConfig creates or replaces the settings document for a
	// (user, game) pair. The game must exist in the catalog.
	SaveGameConfig(ctx context.Context, input SaveGameConfigInput) (*SaveGameConfigOutput, error)

	// GetGameConfig reads one settings document.
	GetGameConfig(ctx context.Context, input GetGameConfigInput) (*GetGameConfigOutput, error)

	// ListGameConfigs reads all of the target user's settings documents.
	ListGameConfigs(ctx context.Context, input ListGameConfigsInput) (*ListGameConfigsOutput, error)

	// RemoveGameConfig deletes one settings document. Removing a document
	// that does not exist succeeds.
	RemoveGameConfig(ctx context.Context, input RemoveGameConfigInput) (*RemoveGameConfigOutput, error)
}
