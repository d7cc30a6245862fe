package repo

import (
	"propSettler/models"
	"sort"
	"sync"
)

// In-memory repositories for tests. They mirror the gorm implementations' query
// semantics (ordering, filters, not-found mapping) closely enough that the
// settlement core can run against them unchanged.

type MemoryGames struct {
	mu    sync.RWMutex
	Games []models.Game
}

func (r *MemoryGames) Add(g models.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Games = append(r.Games, g)
}

func (r *MemoryGames) ByID(id uint) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.Games {
		if g.ID == id {
			game := g
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func externalValue(g models.Game, field ExternalIDField) *string {
	switch field {
	case FieldNhlID:
		return g.NhlID
	case FieldMlbID:
		return g.MlbID
	case FieldEspnID:
		return g.EspnID
	case FieldOddsEventID:
		return g.OddsEventID
	}
	return nil
}

func (r *MemoryGames) ByExternalID(field ExternalIDField, value string) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.Games {
		if v := externalValue(g, field); v != nil && *v == value {
			game := g
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryGames) ByExternalIDAndSport(field ExternalIDField, value string, sport string) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.Games {
		if g.Sport != sport {
			continue
		}
		if v := externalValue(g, field); v != nil && *v == value {
			game := g
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

type MemoryPredictions struct {
	mu     sync.RWMutex
	nextID uint
	Preds  []models.Prediction
}

func (r *MemoryPredictions) Add(p models.Prediction) *models.Prediction {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	} else if p.ID > r.nextID {
		r.nextID = p.ID
	}
	r.Preds = append(r.Preds, p)
	return &r.Preds[len(r.Preds)-1]
}

func (r *MemoryPredictions) PendingPage(offset, limit int) ([]models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pending []models.Prediction
	for _, p := range r.Preds {
		if p.Status == models.PredictionPending {
			pending = append(pending, p)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if offset >= len(pending) {
		return nil, nil
	}
	end := offset + limit
	if end > len(pending) {
		end = len(pending)
	}
	return pending[offset:end], nil
}

func (r *MemoryPredictions) CountByStatus(status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, p := range r.Preds {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *MemoryPredictions) CountCompletedWithResult(result string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, p := range r.Preds {
		if p.Status == models.PredictionCompleted && p.Result != nil && *p.Result == result {
			count++
		}
	}
	return count, nil
}

func (r *MemoryPredictions) Filtered(filter PredictionFilter) ([]models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	statusSet := make(map[string]bool)
	for _, s := range filter.Statuses {
		statusSet[s] = true
	}

	var matched []models.Prediction
	for _, p := range r.Preds {
		if len(statusSet) > 0 && !statusSet[p.Status] {
			continue
		}
		if filter.Sport != "" && p.Sport != filter.Sport {
			continue
		}
		if filter.From != nil && p.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.CreatedAt.After(*filter.To) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *MemoryPredictions) CompletedLegMatch(parlayID uint, selection, betType string, threshold float64) (*models.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *models.Prediction
	for i := range r.Preds {
		p := &r.Preds[i]
		if p.ParlayID == nil || *p.ParlayID != parlayID {
			continue
		}
		if p.PlayerName != selection || p.StatKey != betType || p.Threshold != threshold {
			continue
		}
		if p.Status != models.PredictionCompleted {
			continue
		}
		if best == nil || p.ID < best.ID {
			best = p
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	pred := *best
	return &pred, nil
}

func (r *MemoryPredictions) Save(p *models.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Preds {
		if r.Preds[i].ID == p.ID {
			r.Preds[i] = *p
			return nil
		}
	}
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	r.Preds = append(r.Preds, *p)
	return nil
}

type MemoryParlays struct {
	mu      sync.RWMutex
	Parlays []models.Parlay
	Legs    []models.ParlayLeg
}

func (r *MemoryParlays) AddParlay(p models.Parlay) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Parlays = append(r.Parlays, p)
}

func (r *MemoryParlays) AddLeg(l models.ParlayLeg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Legs = append(r.Legs, l)
}

func (r *MemoryParlays) PendingParlays() ([]models.Parlay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pending []models.Parlay
	for _, p := range r.Parlays {
		if p.Status == models.ParlayPending {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

func (r *MemoryParlays) LegsByParlay(parlayID uint) ([]models.ParlayLeg, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var legs []models.ParlayLeg
	for _, l := range r.Legs {
		if l.ParlayID == parlayID {
			legs = append(legs, l)
		}
	}
	sort.SliceStable(legs, func(i, j int) bool {
		return legs[i].LegIndex < legs[j].LegIndex
	})
	return legs, nil
}

func (r *MemoryParlays) SaveParlay(p *models.Parlay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Parlays {
		if r.Parlays[i].ID == p.ID {
			r.Parlays[i] = *p
			return nil
		}
	}
	r.Parlays = append(r.Parlays, *p)
	return nil
}

func (r *MemoryParlays) SaveLeg(l *models.ParlayLeg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Legs {
		if r.Legs[i].ID == l.ID {
			r.Legs[i] = *l
			return nil
		}
	}
	r.Legs = append(r.Legs, *l)
	return nil
}

type MemoryErrorLogs struct {
	mu      sync.Mutex
	Entries []models.ErrorLog
}

func (r *MemoryErrorLogs) Log(source, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, models.ErrorLog{Source: source, Message: message})
	return nil
}
