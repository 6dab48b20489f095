package service

import (
	"context"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
)

// ServiceService is the business logic for service listings.
type ServiceService interface {
	// ListPublished returns a page of published services ordered by manual
	// display order, then newest first.
	ListPublished(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error)

	// ListAll returns a page of all services, unpublished included.
	ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error)

	// Featured returns up to limit published+featured services by display order.
	Featured(ctx context.Context, limit int) ([]*model.Service, error)

	// GetPublished returns a published service by id.
	GetPublished(ctx context.Context, id int64) (*model.Service, error)

	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error)
	Delete(ctx context.Context, id int64) error
}
