package gameService

import (
	"errors"
	"log/slog"
	"propSettler/models"
	"propSettler/repo"
	"propSettler/services/statService"
	"strconv"
)

// ErrGameNotFound means every resolver strategy missed. Callers treat it as
// "cannot resolve yet", not a hard failure.
var ErrGameNotFound = errors.New("game not found")

// conventionField is the external id column each sport's picks are keyed on.
var conventionField = map[string]repo.ExternalIDField{
	statService.SportHockey:     repo.FieldNhlID,
	statService.SportBaseball:   repo.FieldMlbID,
	statService.SportBasketball: repo.FieldEspnID,
}

// Resolver turns a loosely-typed game reference into the canonical Game row by
// trying an ordered list of identifier strategies. First hit wins.
type Resolver struct {
	Games repo.GameRepository
	Log   *slog.Logger
}

func (r *Resolver) Resolve(gameRef, sportHint string) (*models.Game, error) {
	// 1. canonical id
	if id, err := strconv.ParseUint(gameRef, 10, 64); err == nil {
		if game, err := r.Games.ByID(uint(id)); err == nil {
			return game, nil
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	// 2. sport-convention external id, unconstrained by sport
	for _, field := range r.fieldsToTry(sportHint) {
		game, err := r.Games.ByExternalID(field, gameRef)
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	// 3. generic odds/market event id
	if game, err := r.Games.ByExternalID(repo.FieldOddsEventID, gameRef); err == nil {
		return game, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	// 4. sport-constrained retry, guards against id collisions between leagues
	// that reuse numbering
	if field, ok := conventionField[sportHint]; ok {
		game, err := r.Games.ByExternalIDAndSport(field, gameRef, sportHint)
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}

	r.Log.Debug("game reference unresolved", "gameRef", gameRef, "sportHint", sportHint)
	return nil, ErrGameNotFound
}

func (r *Resolver) fieldsToTry(sportHint string) []repo.ExternalIDField {
	if field, ok := conventionField[sportHint]; ok {
		return []repo.ExternalIDField{field}
	}
	// no hint: try every provider column in a fixed order
	return []repo.ExternalIDField{repo.FieldNhlID, repo.FieldMlbID, repo.FieldEspnID}
}
