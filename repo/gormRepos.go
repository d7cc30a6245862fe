package repo

import (
	"errors"
	"fmt"
	"propSettler/models"

	"gorm.io/gorm"
)

// GormGames, GormPredictions, GormParlays and GormErrorLogs back the repository
// interfaces with the MySQL datastore.

type GormGames struct {
	DB *gorm.DB
}

func (r *GormGames) ByID(id uint) (*models.Game, error) {
	var game models.Game
	result := r.DB.First(&game, id)
	if result.Error != nil {
		return nil, mapNotFound(result.Error)
	}
	return &game, nil
}

func (r *GormGames) ByExternalID(field ExternalIDField, value string) (*models.Game, error) {
	var game models.Game
	result := r.DB.Where(fmt.Sprintf("%s = ?", field), value).First(&game)
	if result.Error != nil {
		return nil, mapNotFound(result.Error)
	}
	return &game, nil
}

func (r *GormGames) ByExternalIDAndSport(field ExternalIDField, value string, sport string) (*models.Game, error) {
	var game models.Game
	result := r.DB.Where(fmt.Sprintf("%s = ? AND sport = ?", field), value, sport).First(&game)
	if result.Error != nil {
		return nil, mapNotFound(result.Error)
	}
	return &game, nil
}

type GormPredictions struct {
	DB *gorm.DB
}

func (r *GormPredictions) PendingPage(offset, limit int) ([]models.Prediction, error) {
	var preds []models.Prediction
	result := r.DB.Where("status = ?", models.PredictionPending).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&preds)
	return preds, result.Error
}

func (r *GormPredictions) CountByStatus(status string) (int64, error) {
	var count int64
	result := r.DB.Model(&models.Prediction{}).Where("status = ?", status).Count(&count)
	return count, result.Error
}

func (r *GormPredictions) CountCompletedWithResult(result string) (int64, error) {
	var count int64
	res := r.DB.Model(&models.Prediction{}).
		Where("status = ? AND result = ?", models.PredictionCompleted, result).
		Count(&count)
	return count, res.Error
}

func (r *GormPredictions) Filtered(filter PredictionFilter) ([]models.Prediction, error) {
	query := r.DB.Model(&models.Prediction{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var preds []models.Prediction
	result := query.Order("created_at ASC").Find(&preds)
	return preds, result.Error
}

func (r *GormPredictions) CompletedLegMatch(parlayID uint, selection, betType string, threshold float64) (*models.Prediction, error) {
	var pred models.Prediction
	result := r.DB.Where(
		"parlay_id = ? AND player_name = ? AND stat_key = ? AND threshold = ? AND status = ?",
		parlayID, selection, betType, threshold, models.PredictionCompleted,
	).Order("id ASC").First(&pred)
	if result.Error != nil {
		return nil, mapNotFound(result.Error)
	}
	return &pred, nil
}

func (r *GormPredictions) Save(p *models.Prediction) error {
	return r.DB.Save(p).Error
}

type GormParlays struct {
	DB *gorm.DB
}

func (r *GormParlays) PendingParlays() ([]models.Parlay, error) {
	var parlays []models.Parlay
	result := r.DB.Where("status = ?", models.ParlayPending).Find(&parlays)
	return parlays, result.Error
}

func (r *GormParlays) LegsByParlay(parlayID uint) ([]models.ParlayLeg, error) {
	var legs []models.ParlayLeg
	result := r.DB.Where("parlay_id = ?", parlayID).Order("leg_index ASC").Find(&legs)
	return legs, result.Error
}

func (r *GormParlays) SaveParlay(p *models.Parlay) error {
	return r.DB.Save(p).Error
}

func (r *GormParlays) SaveLeg(l *models.ParlayLeg) error {
	return r.DB.Save(l).Error
}

type GormErrorLogs struct {
	DB *gorm.DB
}

func (r *GormErrorLogs) Log(source, message string) error {
	errLog := models.ErrorLog{
		Source:  source,
		Message: message,
	}
	return r.DB.Create(&errLog).Error
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
