package usecase

import (
	"context"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ListLibraryInput names whose library to read. TargetUserID is the id the
// request carried, uuid.Nil when absent; resolution against the actor
// happens inside the use case.
type ListLibraryInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
}

// AddToLibraryInput defines an ownership record to create.
type AddToLibraryInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	GameID       uuid.UUID
}

// RemoveFromLibraryInput defines an ownership record to remove.
type RemoveFromLibraryInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	GameID       uuid.UUID
}

// ListLibraryOutput returns a user's library, newest acquisition first.
type ListLibraryOutput struct {
	Entries []*entity.LibraryEntry
}

// AddToLibraryOutput returns the created entry with its catalog record.
type AddToLibraryOutput struct {
	Entry *entity.LibraryEntry
}

// LibraryUsecase defines the per-user game ownership operations.
type LibraryUsecase interface {
	// ListLibrary returns the target user's owned games.
	ListLibrary(ctx context.Context, input ListLibraryInput) (*ListLibraryOutput, error)

	// AddToLibrary records that the target user owns a catalog game.
	AddToLibrary(ctx context.Context, input AddToLibraryInput) (*AddToLibraryOutput, error)

	// RemoveFromLibrary removes an ownership record.
	RemoveFromLibrary(ctx context.Context, input RemoveFromLibraryInput) error
}
