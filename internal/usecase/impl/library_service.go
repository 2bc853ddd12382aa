package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/policy"
	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// libraryService implements the LibraryUsecase interface.
type libraryService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	libraryRepo repository.LibraryRepository
	clock       service.Clock
	logger      *slog.Logger
}

// LibraryServiceParams holds dependencies for libraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	LibraryRepo repository.LibraryRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewLibraryService is the constructor for libraryService.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		libraryRepo: params.LibraryRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLibrary returns the target user's owned games, newest first.
func (srv *libraryService) ListLibrary(ctx context.Context, input usecase.ListLibraryInput) (*usecase.ListLibraryOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanRead(input.Actor, targetUserID); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, targetUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("library owner does not exist")
		}

		return nil, errors.Wrap(err, "find library owner")
	}

	entries, err := srv.libraryRepo.FindByUser(ctx, targetUserID)
	if err != nil {
		return nil, errors.Wrap(err, "list library entries")
	}

	return &usecase.ListLibraryOutput{Entries: entries}, nil
}

// AddToLibrary records ownership of a catalog game. The existence check and
// the insert share one transaction.
func (srv *libraryService) AddToLibrary(ctx context.Context, input usecase.AddToLibraryInput) (*usecase.AddToLibraryOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanManageLibrary(input.Actor, targetUserID); err != nil {
		return nil, err
	}
	if input.GameID == uuid.Nil {
		return nil, domainerrors.ErrMissingGame.WrapMessage("library add without game id")
	}

	var created *entity.LibraryEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		gameRepo := repoFactory.GameRepo()
		libraryRepo := repoFactory.LibraryRepo()

		if _, err := userRepo.FindByID(ctx, targetUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("library owner does not exist")
			}

			return errors.Wrap(err, "find library owner")
		}

		game, err := gameRepo.FindByID(ctx, input.GameID)
		if errors.Is(err, repository.ErrGameNotFound) {
			return domainerrors.ErrGameNotFound.WrapMessage("game not in catalog")
		}
		if err != nil {
			return errors.Wrap(err, "find catalog game")
		}

		_, err = libraryRepo.FindByUserAndGame(ctx, targetUserID, input.GameID)
		if err == nil {
			return domainerrors.ErrLibraryDuplicate.WrapMessage("game already owned")
		}
		if !errors.Is(err, repository.ErrLibraryEntryNotFound) {
			return errors.Wrap(err, "find library entry")
		}

		entry := &entity.LibraryEntry{
			UserID:     targetUserID,
			GameID:     input.GameID,
			AcquiredAt: srv.clock.Now(),
			Game:       game,
		}
		if err := libraryRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "create library entry")
		}

		created = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Library entry added",
		slog.Any("userID", targetUserID), slog.Any("gameID", input.GameID))

	return &usecase.AddToLibraryOutput{Entry: created}, nil
}

// RemoveFromLibrary removes an ownership record.
func (srv *libraryService) RemoveFromLibrary(ctx context.Context, input usecase.RemoveFromLibraryInput) error {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return err
	}
	if err := policy.EnsureCanManageLibrary(input.Actor, targetUserID); err != nil {
		return err
	}
	if input.GameID == uuid.Nil {
		return domainerrors.ErrMissingGame.WrapMessage("library remove without game id")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		libraryRepo := repoFactory.LibraryRepo()

		if _, err := userRepo.FindByID(ctx, targetUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("library owner does not exist")
			}

			return errors.Wrap(err, "find library owner")
		}

		_, err := libraryRepo.FindByUserAndGame(ctx, targetUserID, input.GameID)
		if errors.Is(err, repository.ErrLibraryEntryNotFound) {
			return domainerrors.ErrLibraryEntryNotFound.WrapMessage("game not owned")
		}
		if err != nil {
			return errors.Wrap(err, "find library entry")
		}

		if err := libraryRepo.Delete(ctx, targetUserID, input.GameID); err != nil {
			return errors.Wrap(err, "delete library entry")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Library entry removed",
		slog.Any("userID", targetUserID), slog.Any("gameID", input.GameID))

	return nil
}

// resolveTarget applies the self-or-admin resolution rule and rejects admin
// requests that never named a target.
func (srv *libraryService) resolveTarget(actor entity.Identity, requested uuid.UUID) (uuid.UUID, error) {
	targetUserID := policy.ResolveTargetUserID(actor, requested)
	if targetUserID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrMissingTargetUser.WrapMessage("admin request without target user")
	}

	return targetUserID, nil
}
