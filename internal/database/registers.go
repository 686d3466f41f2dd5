package database

import (
	"errors"
	"fmt"

	"complypilot/internal/apperr"
	"complypilot/internal/models"

	"gorm.io/gorm"
)

// RegisterStore is the gorm-backed persistence for risk registers,
// implementing risk.Store.
type RegisterStore struct{}

func NewRegisterStore() *RegisterStore {
	return &RegisterStore{}
}

func (RegisterStore) Get(subjectID string) (*models.RiskRegister, error) {
	var register models.RiskRegister
	err := DB.Where("user_id = ?", subjectID).First(&register).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: risk register", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &register, nil
}

// Replace runs delete-then-insert inside one transaction so no reader ever
// observes two registers for a subject.
func (RegisterStore) Replace(register *models.RiskRegister) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", register.UserID).Delete(&models.RiskRegister{}).Error; err != nil {
			return err
		}
		return tx.Create(register).Error
	})
}

func (RegisterStore) Save(register *models.RiskRegister) error {
	return DB.Save(register).Error
}

func (RegisterStore) SetBusinessProfile(subjectID, businessType string, industry *string) error {
	return DB.Model(&models.User{}).
		Where("user_id = ?", subjectID).
		Updates(map[string]interface{}{
			"business_type": businessType,
			"industry":      industry,
		}).Error
}
