package repositories

import (
	"context"
	"errors"
	"strings"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"
	"shopconsole.io/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TenantEntity is satisfied by pointers to models embedding TenantModel.
type TenantEntity[T any] interface {
	*T
	models.TenantScoped
}

// IBaseRepository is the tenant scoped CRUD shared by the commerce entities
// and admin logs. Every query filters by org_mail.
type IBaseRepository[T any] interface {
	List(ctx context.Context, orgMail string, params queryparams.ListParams) ([]T, int64, error)
	FindByID(ctx context.Context, orgMail string, id uint) (*T, error)
	Create(ctx context.Context, orgMail string, entity *T) error
	Update(ctx context.Context, orgMail string, id uint, entity *T) error
	Delete(ctx context.Context, orgMail string, id uint) error
	Count(ctx context.Context, orgMail string) (int64, error)
	SetAllowedSortColumns(columns []string)
	SetSearchColumns(columns []string)
}

type BaseRepository[T any, PT TenantEntity[T]] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
	searchColumns      []string
}

var _ IBaseRepository[models.Customer] = (*BaseRepository[models.Customer, *models.Customer])(nil)

func NewBaseRepository[T any, PT TenantEntity[T]](db *gorm.DB) *BaseRepository[T, PT] {
	return &BaseRepository[T, PT]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true, "updated_at": true},
	}
}

func (r *BaseRepository[T, PT]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]bool, len(columns))
	for _, col := range columns {
		r.allowedSortColumns[col] = true
	}
}

func (r *BaseRepository[T, PT]) SetSearchColumns(columns []string) {
	r.searchColumns = columns
}

func (r *BaseRepository[T, PT]) scoped(ctx context.Context, orgMail string) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T)).Where("org_mail = ?", orgMail)
}

func (r *BaseRepository[T, PT]) List(ctx context.Context, orgMail string, params queryparams.ListParams) ([]T, int64, error) {
	query := r.scoped(ctx, orgMail)
	if params.Search != "" && len(r.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		clauses := make([]string, len(r.searchColumns))
		args := make([]any, len(r.searchColumns))
		for i, col := range r.searchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("Count failed", zap.String("org_mail", orgMail), zap.Error(err))
		return nil, 0, err
	}
	results := make([]T, 0)
	if total == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}
	orderBy := params.OrderBy
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.Order(sortBy + " " + orderBy).Order("id " + orderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&results).Error
	if err != nil {
		configslog.Log.Error("List failed", zap.String("org_mail", orgMail), zap.Error(err))
		return nil, 0, err
	}
	return results, total, nil
}

func (r *BaseRepository[T, PT]) FindByID(ctx context.Context, orgMail string, id uint) (*T, error) {
	var entity T
	err := r.scoped(ctx, orgMail).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FindByID failed", zap.String("org_mail", orgMail), zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T, PT]) Create(ctx context.Context, orgMail string, entity *T) error {
	PT(entity).SetID(0)
	PT(entity).SetOrgMail(orgMail)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("Create failed", zap.String("org_mail", orgMail), zap.Error(err))
		return err
	}
	return nil
}

// Update replaces every column of the row with entity's values. The id,
// tenant and creation time of the stored row are kept.
func (r *BaseRepository[T, PT]) Update(ctx context.Context, orgMail string, id uint, entity *T) error {
	existing, err := r.FindByID(ctx, orgMail, id)
	if err != nil {
		return err
	}
	PT(entity).SetID(id)
	PT(entity).SetOrgMail(orgMail)
	PT(entity).SetCreatedAt(PT(existing).GetCreatedAt())
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("Update failed", zap.String("org_mail", orgMail), zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *BaseRepository[T, PT]) Delete(ctx context.Context, orgMail string, id uint) error {
	result := r.db.WithContext(ctx).Where("org_mail = ? AND id = ?", orgMail, id).Delete(new(T))
	if result.Error != nil {
		configslog.Log.Error("Delete failed", zap.String("org_mail", orgMail), zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T, PT]) Count(ctx context.Context, orgMail string) (int64, error) {
	var count int64
	err := r.scoped(ctx, orgMail).Count(&count).Error
	return count, err
}
