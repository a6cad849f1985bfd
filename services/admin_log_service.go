package services

import (
	"context"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/queryparams"
	"shopconsole.io/repositories"

	"gorm.io/gorm"
)

type IAdminLogService interface {
	List(ctx context.Context, orgMail string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// AdminLogService reads the audit trail written by settings changes.
type AdminLogService struct {
	repo repositories.IBaseRepository[models.AdminLog]
}

var _ IAdminLogService = (*AdminLogService)(nil)

func NewAdminLogService(db *gorm.DB) *AdminLogService {
	repo := repositories.NewBaseRepository[models.AdminLog](db)
	repo.SetAllowedSortColumns([]string{"id", "created_at", "action", "category"})
	repo.SetSearchColumns([]string{"detail", "category"})
	return &AdminLogService{repo: repo}
}

func (s *AdminLogService) List(ctx context.Context, orgMail string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	logs, total, err := s.repo.List(ctx, orgMail, params)
	if err != nil {
		return nil, apperrors.Internal("admin logs could not be listed", err)
	}
	return queryparams.NewResult(logs, params, total), nil
}
