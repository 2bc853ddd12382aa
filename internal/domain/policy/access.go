// Package policy implements the shared "self or admin" access rules applied
// by every per-user resource service. The rules are deliberately asymmetric
// between resources: library writes follow the read rule (admins may manage
// any library), while game-config writes exclude admins entirely (admins
// have read-only visibility into personal settings).
package policy

import (
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"

	"github.com/google/uuid"
)

// ResolveTargetUserID decides which user a request operates on.
// Admins act on whatever target the request names (possibly uuid.Nil, which
// the caller must reject as a bad request). Non-admins always act on
// themselves, no matter what id the request carries.
func ResolveTargetUserID(actor entity.Identity, requested uuid.UUID) uuid.UUID {
	if actor.IsAdmin() {
		return requested
	}

	return actor.ID
}

// EnsureCanRead checks the read rule: admins may read any user's resources,
// everyone else only their own.
func EnsureCanRead(actor entity.Identity, targetUserID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID == targetUserID {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("actor may only read own resources")
}

// EnsureCanManageLibrary checks the library write rule, which matches the
// read rule: admins may manage any user's library.
func EnsureCanManageLibrary(actor entity.Identity, targetUserID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID == targetUserID {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("actor may only manage own library")
}

// EnsureCanWriteConfig checks the game-config write rule. Admins are
// explicitly denied: personal game settings are writable by their owner only.
func EnsureCanWriteConfig(actor entity.Identity, targetUserID uuid.UUID) error {
	if actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("admins cannot modify user settings")
	}
	if actor.ID != targetUserID {
		return domainerrors.ErrForbidden.WrapMessage("actor may only modify own settings")
	}

	return nil
}
