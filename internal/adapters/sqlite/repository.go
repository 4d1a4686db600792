package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atvirokodosprendimai/movieslib/internal/adapters/sqlite/gormsqlite"
	"github.com/atvirokodosprendimai/movieslib/internal/core/domain"
	"gorm.io/gorm"
)

// documentModel is one JSON document of a collection. seq keeps insertion
// order, which is the natural order lists are returned in.
type documentModel struct {
	Seq        int64  `gorm:"column:seq;primaryKey;autoIncrement"`
	Collection string `gorm:"column:collection;not null"`
	DocID      string `gorm:"column:doc_id;not null"`
	Data       string `gorm:"column:data;not null"`
}

func (documentModel) TableName() string {
	return "documents"
}

// collection runs the document queries shared by the typed repositories.
type collection struct {
	db   *gormsqlite.DB
	name string
}

func (c collection) list(ctx context.Context, where string, args ...any) ([]documentModel, error) {
	var models []documentModel
	err := c.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		q := tx.Where("collection = ?", c.name)
		if where != "" {
			q = q.Where(where, args...)
		}
		return q.Order("seq ASC").Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	return models, nil
}

func (c collection) insert(ctx context.Context, data any) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", c.name, err)
	}

	model := documentModel{
		Collection: c.name,
		DocID:      domain.NewID(),
		Data:       string(encoded),
	}
	err = c.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		return tx.Create(&model).Error
	})
	if err != nil {
		return "", fmt.Errorf("insert %s document: %w", c.name, err)
	}
	return model.DocID, nil
}

func (c collection) findByField(ctx context.Context, field, value string) (documentModel, error) {
	var model documentModel
	err := c.db.ReadTX(ctx, func(tx *gormsqlite.Tx) error {
		return tx.Where("collection = ? AND json_extract(data, ?) = ?", c.name, "$."+field, value).
			Order("seq ASC").
			First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return documentModel{}, domain.ErrNotFound
		}
		return documentModel{}, fmt.Errorf("find %s by %s: %w", c.name, field, err)
	}
	return model, nil
}

// updateFirstByField replaces the data of the first document whose field
// equals value. Nothing happens when no document matches.
func (c collection) updateFirstByField(ctx context.Context, field, value string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.name, err)
	}

	return c.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		var model documentModel
		err := tx.Where("collection = ? AND json_extract(data, ?) = ?", c.name, "$."+field, value).
			Order("seq ASC").
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find %s by %s: %w", c.name, field, err)
		}

		if err := tx.Model(&documentModel{}).Where("seq = ?", model.Seq).Update("data", string(encoded)).Error; err != nil {
			return fmt.Errorf("update %s document: %w", c.name, err)
		}
		return nil
	})
}

func (c collection) deleteByID(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := c.db.WriteTX(ctx, func(tx *gormsqlite.Tx) error {
		res := tx.Where("collection = ? AND doc_id = ?", c.name, id).Delete(&documentModel{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete %s document: %w", c.name, err)
	}
	return affected > 0, nil
}
