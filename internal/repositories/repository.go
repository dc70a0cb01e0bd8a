package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines the generic CRUD and predicate-query operations every
// service uses against the store. Lookup misses are reported as a nil
// entity with a nil error so callers can branch on presence; only real
// store failures surface as errors.
type Repository[T any] interface {
	Get(id uint) (*T, error)
	First(query string, args ...any) (*T, error)
	Exists(query string, args ...any) (bool, error)
	List(query string, args ...any) ([]T, error)
	ListOrdered(order string, query string, args ...any) ([]T, error)
	Create(entity *T) error
	Save(entity *T) error
	Delete(entity *T) error
}

// gormRepository implements Repository on top of a gorm DB handle
type gormRepository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed Repository for one entity type
func NewRepository[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) Get(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) First(query string, args ...any) (*T, error) {
	var entity T
	if err := r.db.Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *gormRepository[T]) Exists(query string, args ...any) (bool, error) {
	var count int64
	var entity T
	if err := r.db.Model(&entity).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository[T]) List(query string, args ...any) ([]T, error) {
	entities := []T{}
	if err := r.db.Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) ListOrdered(order string, query string, args ...any) ([]T, error) {
	entities := []T{}
	if err := r.db.Where(query, args...).Order(order).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *gormRepository[T]) Save(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *gormRepository[T]) Delete(entity *T) error {
	return r.db.Delete(entity).Error
}
