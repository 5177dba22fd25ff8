package services

import (
	apierrors "api/internal/errors"
	"api/internal/handlers"
	m "api/internal/middlewares"
	"api/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService implements the shared reference-data contract once for all
// catalog kinds: ordered list, create with prefix-insert, update in place,
// delete, and full-list reorder. Kind-specific field mapping and validation
// live in the Apply/Associate hooks supplied by the per-kind constructors.
type CatalogService[T any, B any] struct {
	DB       *gorm.DB
	Preloads []string

	// Apply maps a validated body onto the entity's scalar columns. It runs
	// inside the surrounding transaction and may reject with an APIError.
	Apply func(tx *gorm.DB, entity *T, body B) error

	// Associate, when set, reconciles many-to-many links after the entity
	// row exists. It must leave the entity's association fields loaded.
	Associate func(tx *gorm.DB, entity *T, body B) error
}

// Routes is the read-only surface available to every authenticated user.
func (s CatalogService[T, B]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.GetListHandler(s.List))
	return r
}

// AdminRoutes carries every mutation affordance; the caller wraps it in the
// admin authorization middleware.
func (s CatalogService[T, B]) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.With(m.Validate[B]).Post("/", handlers.CreateHandler(s.Create))
	r.With(m.Validate[models.ReorderBody]).Patch("/reorder", handlers.CreateHandler(s.Reorder))
	r.Route("/{id0}", func(r chi.Router) {
		r.With(m.Validate[B]).Post("/", handlers.CreateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
	})
	return r
}

func (s CatalogService[T, B]) query(tx *gorm.DB) *gorm.DB {
	q := tx
	for _, preload := range s.Preloads {
		q = q.Preload(preload)
	}
	return q
}

func (s CatalogService[T, B]) List(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
) ([]T, error) {
	var items []T
	err := s.query(s.DB).Order("position ASC, id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create prefix-inserts: every existing row shifts down one position and the
// new entity takes position 0, matching the list's newest-first convention.
func (s CatalogService[T, B]) Create(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body B,
) (T, error) {
	var entity T
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Apply(tx, &entity, body); err != nil {
			return err
		}
		if err := tx.Model(new(T)).
			Where("position >= 0").
			Update("position", gorm.Expr("position + 1")).Error; err != nil {
			return err
		}
		if err := tx.Create(&entity).Error; err != nil {
			return err
		}
		if s.Associate != nil {
			return s.Associate(tx, &entity, body)
		}
		return nil
	})
	return entity, err
}

func (s CatalogService[T, B]) Update(
	_ *zap.Logger,
	_ models.UserClaims,
	ids []uint,
	body B,
) (T, error) {
	var entity T
	if len(ids) != 1 {
		return entity, apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.query(tx).First(&entity, "id = ?", ids[0]).Error; err != nil {
			return apierrors.NewAPIError(404, apierrors.ErrNotFound)
		}
		if err := s.Apply(tx, &entity, body); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&entity).Error; err != nil {
			return err
		}
		if s.Associate != nil {
			return s.Associate(tx, &entity, body)
		}
		return nil
	})
	return entity, err
}

func (s CatalogService[T, B]) Delete(
	_ *zap.Logger,
	_ models.UserClaims,
	ids []uint,
) error {
	if len(ids) != 1 {
		return apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}

	var entity T
	if err := s.DB.First(&entity, "id = ?", ids[0]).Error; err != nil {
		return apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}

	return s.DB.Select(clause.Associations).Delete(&entity).Error
}

// Reorder persists a complete new display order. The submitted sequence must
// mention every current identifier exactly once; identity never changes,
// only positions.
func (s CatalogService[T, B]) Reorder(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.ReorderBody,
) ([]T, error) {
	var existing []uint
	if err := s.DB.Model(new(T)).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}

	if !sameIDSet(existing, body.OrderedIDs) {
		return nil, apierrors.NewAPIError(400, apierrors.ErrReorderIDMismatch)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for index, id := range body.OrderedIDs {
			if err := tx.Model(new(T)).
				Where("id = ?", id).
				Update("position", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.List(nil, models.UserClaims{}, nil)
}

func sameIDSet(existing []uint, submitted []uint) bool {
	if len(existing) != len(submitted) {
		return false
	}
	seen := make(map[uint]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}
	for _, id := range submitted {
		if !seen[id] {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}
