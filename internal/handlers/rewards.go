package handlers

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quickcust/quickask/backend/internal/models"
	"github.com/quickcust/quickask/backend/internal/reputation"
)

// lockForUpdate takes a row lock so the likes counter, reaction rows and
// reward columns move together. Sqlite (used by the test harness) has no
// FOR UPDATE; its transactions are serialized anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// applyReward credits points to a user inside the caller's transaction.
func applyReward(tx *gorm.DB, userID, points int) error {
	var user models.User
	if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
		return err
	}

	reputation.ApplyPoints(&user, points)

	return tx.Model(&user).Updates(map[string]interface{}{
		"points":         user.Points,
		"level":          user.Level,
		"level_progress": user.LevelProgress,
	}).Error
}
