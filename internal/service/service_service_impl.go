package service

import (
	"context"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
)

// defaultFeaturedLimit caps the featured strip on the home page.
const defaultFeaturedLimit = 4

// serviceServiceImpl is the production implementation of ServiceService.
type serviceServiceImpl struct {
	repo repository.ServiceRepository
}

// NewServiceService creates a ServiceService backed by the given repository.
func NewServiceService(repo repository.ServiceRepository) ServiceService {
	return &serviceServiceImpl{repo: repo}
}

func (s *serviceServiceImpl) list(ctx context.Context, page, limit int, publishedOnly bool) (*pagination.Page[*model.Service], error) {
	return pagination.Paginate(ctx, page, limit,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, model.ServiceListOptions{PublishedOnly: publishedOnly})
		},
		func(ctx context.Context, limit, offset int) ([]*model.Service, error) {
			return s.repo.List(ctx, model.ServiceListOptions{
				PublishedOnly: publishedOnly,
				Limit:         limit,
				Offset:        offset,
			})
		},
	)
}

// ListPublished returns a page of published services.
func (s *serviceServiceImpl) ListPublished(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error) {
	return s.list(ctx, page, limit, true)
}

// ListAll returns a page of all services, unpublished included.
func (s *serviceServiceImpl) ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error) {
	return s.list(ctx, page, limit, false)
}

// Featured returns up to limit published+featured services by display order.
func (s *serviceServiceImpl) Featured(ctx context.Context, limit int) ([]*model.Service, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	services, err := s.repo.List(ctx, model.ServiceListOptions{
		PublishedOnly: true,
		FeaturedOnly:  true,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []*model.Service{}
	}
	return services, nil
}

// GetPublished returns a published service by id.
func (s *serviceServiceImpl) GetPublished(ctx context.Context, id int64) (*model.Service, error) {
	return s.repo.GetPublishedByID(ctx, id)
}

// Create stores a new service listing.
func (s *serviceServiceImpl) Create(ctx context.Context, svc *model.Service) error {
	return s.repo.Create(ctx, svc)
}

// Update applies a sparse patch and returns the updated service.
func (s *serviceServiceImpl) Update(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error) {
	return s.repo.Patch(ctx, id, patch)
}

// Delete removes a service listing.
func (s *serviceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
