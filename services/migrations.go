package services

import (
	"log/slog"
	"propSettler/models"
	"propSettler/services/statService"
	"time"

	"gorm.io/gorm"
)

// RunStatKeyNormalization rewrites retired stat-key aliases on unsettled
// predictions to their canonical form, so the sweep and the parlay leg join only
// ever see one spelling per stat. Runs once, guarded by the migrations table.
func RunStatKeyNormalization(db *gorm.DB, log *slog.Logger) error {
	var existing models.Migration
	result := db.Where("name = ?", "stat_key_alias_normalization").First(&existing)
	if result.Error == nil && existing.ID != 0 {
		return nil
	}

	var preds []models.Prediction
	if err := db.Where("status IN ?", []string{models.PredictionPending, models.PredictionNeedsReview}).
		Find(&preds).Error; err != nil {
		return err
	}

	updated := 0
	for i := range preds {
		pred := &preds[i]
		canonical, ok := statService.CanonicalKey(pred.Sport, pred.StatKey)
		if !ok || canonical == pred.StatKey {
			continue
		}
		pred.StatKey = canonical
		if err := db.Save(pred).Error; err != nil {
			log.Error("failed to normalize stat key", "prediction", pred.ID, "error", err)
			continue
		}
		updated++
	}

	log.Info("stat key normalization complete", "examined", len(preds), "updated", updated)

	migration := models.Migration{
		Name:       "stat_key_alias_normalization",
		ExecutedAt: time.Now(),
	}
	return db.Create(&migration).Error
}
