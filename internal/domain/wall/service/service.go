package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vadim/vk-metric/internal/domain/wall/entity"
)

// PageSize is the number of posts requested per wall.get call
const PageSize = 100

// VKClient defines the VK API operation needed to read a wall.
// Pages are ordered newest first.
type VKClient interface {
	GetWallPage(ctx context.Context, ownerID int64, offset, count int) ([]entity.Post, error)
}

// Service loads wall posts
type Service struct {
	vk     VKClient
	logger *slog.Logger
}

// New creates a new wall service
func New(vk VKClient, logger *slog.Logger) *Service {
	return &Service{vk: vk, logger: logger}
}

// PostsOfMonth returns the posts of ownerID published in the window's month, newest first.
//
// Paging stops after the first page whose oldest post predates the window, or on an
// empty page, so the posts on the window's far boundary are always loaded before the
// final filter. Only the first page may end paging by being short.
func (s *Service) PostsOfMonth(ctx context.Context, ownerID int64, w entity.Window) ([]entity.Post, error) {
	res, err := s.page(ctx, ownerID, 0)
	if err != nil {
		return nil, err
	}
	if len(res) < PageSize {
		return entity.FilterMonth(res, w), nil
	}

	for offset := PageSize; ; offset += PageSize {
		s.logger.Info("load more data", "owner_id", ownerID, "offset", offset)

		page, err := s.page(ctx, ownerID, offset)
		if err != nil {
			return nil, err
		}
		res = append(res, page...)

		if !needMore(page, w) {
			break
		}
	}

	return entity.FilterMonth(res, w), nil
}

func (s *Service) page(ctx context.Context, ownerID int64, offset int) ([]entity.Post, error) {
	posts, err := s.vk.GetWallPage(ctx, ownerID, offset, PageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching wall page of %d at offset %d: %w", ownerID, offset, err)
	}
	return posts, nil
}

// needMore reports whether the page after this one may still hold posts of the window.
// Later pages can come back short without the history being exhausted, so only an
// empty page ends paging regardless of dates.
func needMore(page []entity.Post, w entity.Window) bool {
	if len(page) == 0 {
		return false
	}
	oldest := page[len(page)-1]
	return !w.Before(oldest.Date)
}
