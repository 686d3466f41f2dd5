package database

import (
	"errors"
	"fmt"

	"complypilot/internal/apperr"
	"complypilot/internal/models"

	"gorm.io/gorm"
)

// DocumentStore is the gorm-backed persistence for uploaded documents,
// implementing documents.Store.
type DocumentStore struct{}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

func (DocumentStore) Insert(doc *models.Document) error {
	return DB.Create(doc).Error
}

func (DocumentStore) Get(id, subjectID string) (*models.Document, error) {
	var doc models.Document
	err := DB.Where("id = ? AND user_id = ?", id, subjectID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: document %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (DocumentStore) Update(doc *models.Document) error {
	return DB.Save(doc).Error
}

func (DocumentStore) Delete(id, subjectID string) error {
	res := DB.Where("id = ? AND user_id = ?", id, subjectID).Delete(&models.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: document %s", apperr.ErrNotFound, id)
	}
	return nil
}

// ListRecent returns the subject's newest documents without their raw
// content.
func (DocumentStore) ListRecent(subjectID string, limit int) ([]models.Document, error) {
	var docs []models.Document
	err := DB.Omit("content").
		Where("user_id = ?", subjectID).
		Order("created_at desc").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}
