package services

import (
	"context"
	"errors"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/queryparams"
	"shopconsole.io/repositories"

	"gorm.io/gorm"
)

// ValidatedEntity is satisfied by pointers to the commerce models.
type ValidatedEntity[T any] interface {
	repositories.TenantEntity[T]
	models.Validatable
}

type IEntityService[T any] interface {
	List(ctx context.Context, orgMail string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	Get(ctx context.Context, orgMail string, id uint) (*T, error)
	Create(ctx context.Context, orgMail string, entity *T) error
	Update(ctx context.Context, orgMail string, id uint, entity *T) error
	Delete(ctx context.Context, orgMail string, id uint) error
}

// EntityService is the tenant scoped CRUD behind every commerce resource.
type EntityService[T any, PT ValidatedEntity[T]] struct {
	name string
	repo repositories.IBaseRepository[T]
}

// NewEntityService builds the service for one resource. sortable and
// searchable whitelist the columns list requests may use.
func NewEntityService[T any, PT ValidatedEntity[T]](db *gorm.DB, name string, sortable, searchable []string) *EntityService[T, PT] {
	repo := repositories.NewBaseRepository[T, PT](db)
	repo.SetAllowedSortColumns(append([]string{"id", "created_at", "updated_at"}, sortable...))
	repo.SetSearchColumns(searchable)
	return &EntityService[T, PT]{name: name, repo: repo}
}

func (s *EntityService[T, PT]) List(ctx context.Context, orgMail string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	items, total, err := s.repo.List(ctx, orgMail, params)
	if err != nil {
		return nil, apperrors.Internal(s.name+" could not be listed", err)
	}
	return queryparams.NewResult(items, params, total), nil
}

func (s *EntityService[T, PT]) Get(ctx context.Context, orgMail string, id uint) (*T, error) {
	entity, err := s.repo.FindByID(ctx, orgMail, id)
	if err != nil {
		return nil, s.translate(err, "loaded")
	}
	return entity, nil
}

func (s *EntityService[T, PT]) Create(ctx context.Context, orgMail string, entity *T) error {
	if err := PT(entity).Validate(); err != nil {
		return apperrors.Validation("%s", err.Error())
	}
	if err := s.repo.Create(ctx, orgMail, entity); err != nil {
		return s.translate(err, "created")
	}
	return nil
}

func (s *EntityService[T, PT]) Update(ctx context.Context, orgMail string, id uint, entity *T) error {
	if err := PT(entity).Validate(); err != nil {
		return apperrors.Validation("%s", err.Error())
	}
	if err := s.repo.Update(ctx, orgMail, id, entity); err != nil {
		return s.translate(err, "updated")
	}
	return nil
}

func (s *EntityService[T, PT]) Delete(ctx context.Context, orgMail string, id uint) error {
	if err := s.repo.Delete(ctx, orgMail, id); err != nil {
		return s.translate(err, "deleted")
	}
	return nil
}

func (s *EntityService[T, PT]) translate(err error, verb string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NotFound(s.name + " not found")
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.Conflict(s.name + " already exists")
	default:
		return apperrors.Internal(s.name+" could not be "+verb, err)
	}
}
