package service

import (
	"context"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/repository"
)

const (
	recentPostsLimit    = 5
	recentContactsLimit = 5
)

// StatsService aggregates data for the admin dashboard and the public home
// page.
type StatsService interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Home(ctx context.Context) (*model.Home, error)
}

// statsServiceImpl is the production implementation of StatsService.
type statsServiceImpl struct {
	posts    repository.PostRepository
	services repository.ServiceRepository
	contacts repository.ContactRepository
}

// NewStatsService creates a StatsService over the three repositories.
func NewStatsService(posts repository.PostRepository, services repository.ServiceRepository, contacts repository.ContactRepository) StatsService {
	return &statsServiceImpl{posts: posts, services: services, contacts: contacts}
}

// Dashboard returns counters plus the most recent posts and inquiries.
func (s *statsServiceImpl) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var d model.Dashboard
	var err error

	if d.Stats.TotalPosts, err = s.posts.Count(ctx, false); err != nil {
		return nil, err
	}
	if d.Stats.PublicPosts, err = s.posts.Count(ctx, true); err != nil {
		return nil, err
	}
	if d.Stats.TotalContacts, err = s.contacts.Count(ctx); err != nil {
		return nil, err
	}
	if d.Stats.UnreadContacts, err = s.contacts.CountUnread(ctx); err != nil {
		return nil, err
	}
	if d.Stats.UnrepliedContacts, err = s.contacts.CountUnreplied(ctx); err != nil {
		return nil, err
	}

	if d.RecentPosts, err = s.posts.List(ctx, model.PostListOptions{Limit: recentPostsLimit}); err != nil {
		return nil, err
	}
	if d.RecentContacts, err = s.contacts.List(ctx, model.ContactListOptions{Limit: recentContactsLimit}); err != nil {
		return nil, err
	}
	if d.RecentPosts == nil {
		d.RecentPosts = []*model.PostListItem{}
	}
	if d.RecentContacts == nil {
		d.RecentContacts = []*model.Contact{}
	}
	return &d, nil
}

// Home returns featured services and the latest public posts.
func (s *statsServiceImpl) Home(ctx context.Context) (*model.Home, error) {
	var h model.Home
	var err error

	if h.FeaturedServices, err = s.services.List(ctx, model.ServiceListOptions{
		PublishedOnly: true,
		FeaturedOnly:  true,
		Limit:         defaultFeaturedLimit,
	}); err != nil {
		return nil, err
	}
	if h.LatestPosts, err = s.posts.List(ctx, model.PostListOptions{
		PublicOnly: true,
		Limit:      recentPostsLimit,
	}); err != nil {
		return nil, err
	}
	if h.FeaturedServices == nil {
		h.FeaturedServices = []*model.Service{}
	}
	if h.LatestPosts == nil {
		h.LatestPosts = []*model.PostListItem{}
	}
	return &h, nil
}
