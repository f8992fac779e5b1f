package repository

import (
	"errors"

	"scripturenotes/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// FindAllSummaries returns every note row, most recently updated first.
// Pane items are not loaded.
func (d *DefaultNoteRepository) FindAllSummaries() ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Order("updated_at DESC").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID returns the note row and its pane items in stored order, or
// (nil, nil, nil) when no note matches id. Absence is not an error.
func (d *DefaultNoteRepository) FindByID(id string) (*entity.Note, []*entity.PaneItem, error) {
	var note entity.Note
	err := d.db.First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var items []*entity.PaneItem
	err = d.db.Where("note_id = ?", id).Order("sort_order").Find(&items).Error
	if err != nil {
		return nil, nil, err
	}
	return &note, items, nil
}

func (d *DefaultNoteRepository) Create(note *entity.Note) error {
	return d.db.Create(note).Error
}

// Replace updates the note's title and updatedAt timestamp and swaps out its
// entire pane-item set for items, all in one transaction. Returns false when
// the note does not exist; nothing is written in that case.
func (d *DefaultNoteRepository) Replace(id, title, updatedAt string, items []*entity.PaneItem) (bool, error) {
	found := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var note entity.Note
		err := tx.First(&note, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		err = tx.Model(&entity.Note{}).Where("id = ?", id).
			Updates(map[string]any{"title": title, "updated_at": updatedAt}).Error
		if err != nil {
			return err
		}

		if err := tx.Where("note_id = ?", id).Delete(&entity.PaneItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	return found, err
}

// Delete removes the note's pane items and then the note row. The cascade is
// manual; the transaction makes both deletes commit together or not at all.
func (d *DefaultNoteRepository) Delete(id string) (bool, error) {
	found := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var note entity.Note
		err := tx.First(&note, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		if err := tx.Where("note_id = ?", id).Delete(&entity.PaneItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Note{}, "id = ?", id).Error
	})
	return found, err
}
