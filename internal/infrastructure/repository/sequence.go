package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// nextSequence allocates the next tracking-number sequence for a (table,
// year) pair. Callers that need the allocation to be race-free run it inside
// a transaction via the TransactionManager.
func nextSequence(tx *gorm.DB, model interface{}, year int) (int, error) {
	var max int
	err := tx.Model(model).
		Where("year = ?", year).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence: %w", err)
	}
	return max + 1, nil
}
