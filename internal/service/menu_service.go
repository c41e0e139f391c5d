package service

import (
	"context"
	"encoding/json"
	"log"

	"rms-web/internal/domain"
	"rms-web/internal/listing"
)

type MenuService struct {
	backend MenuBackend
	cache   ListingCache
}

// NewMenuService builds the menu/browse service. cache may be nil, in which
// case every request goes to the remote API.
func NewMenuService(backend MenuBackend, cache ListingCache) *MenuService {
	return &MenuService{backend: backend, cache: cache}
}

func (s *MenuService) Categories(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		if payload, ok, err := s.cache.Get(ctx, s.cache.CategoriesKey()); err == nil && ok {
			var categories []domain.Category
			if json.Unmarshal(payload, &categories) == nil {
				return categories, nil
			}
		}
	}

	categories, _, err := s.backend.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(categories); err == nil {
			if err := s.cache.Set(ctx, s.cache.CategoriesKey(), payload); err != nil {
				log.Printf("[menu] cache set failed: %v", err)
			}
		}
	}
	return categories, nil
}

// Browse runs one listing request for the current filter state and decodes
// the pagination metadata into the page-number strip.
func (s *MenuService) Browse(ctx context.Context, q listing.Query) (MenuPage, error) {
	key := ""
	if s.cache != nil {
		key = s.cache.MenuKey(q.Values())
		if payload, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var cached MenuPage
			if json.Unmarshal(payload, &cached) == nil {
				return cached, nil
			}
		}
	}

	items, meta, err := s.backend.MenuItems(ctx, q)
	if err != nil {
		return MenuPage{}, err
	}

	page := MenuPage{
		Items:      items,
		Pagination: listing.Paginate(q.Page, meta),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			if err := s.cache.Set(ctx, key, payload); err != nil {
				log.Printf("[menu] cache set failed: %v", err)
			}
		}
	}
	return page, nil
}

func (s *MenuService) Item(ctx context.Context, id int) (ItemView, error) {
	item, err := s.backend.MenuItem(ctx, id)
	if err != nil {
		return ItemView{}, err
	}
	reviews, _, err := s.backend.Reviews(ctx, id)
	if err != nil {
		return ItemView{}, err
	}
	return ItemView{Item: item, Reviews: reviews}, nil
}

func (s *MenuService) SubmitReview(ctx context.Context, token string, menuItemID, rating int, comment string) (domain.Review, error) {
	return s.backend.CreateReview(ctx, token, menuItemID, rating, comment)
}

var _ MenuServiceInterface = (*MenuService)(nil)
