package recommend

import (
	"errors"

	"playNext/business/profile"
)

var (
	// ErrCatalogUnavailable mirrors the profile builder's condition so
	// handlers only depend on this package.
	ErrCatalogUnavailable = profile.ErrCatalogUnavailable

	// ErrUserResolution means the ownership provider could not resolve the
	// player at all.
	ErrUserResolution = errors.New("failed to resolve user")

	// ErrNoGamesFound means the player resolved but owns no games (or the
	// library is private).
	ErrNoGamesFound = errors.New("no games found for this user")

	// ErrNoPicks means a selection request arrived without any picks.
	ErrNoPicks = errors.New("no games selected")
)
