package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PageSize is the number of member ids requested per groups.getMembers call
const PageSize = 100

// VKClient defines the VK API operation needed to list community members.
// Pages are ordered by ascending member id.
type VKClient interface {
	GetMembersPage(ctx context.Context, groupID int64, offset, count int) ([]int64, error)
}

// Service loads community member lists
type Service struct {
	vk     VKClient
	delay  time.Duration
	logger *slog.Logger
}

// New creates a new member service that pauses for delay between pages
func New(vk VKClient, delay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		vk:     vk,
		delay:  delay,
		logger: logger,
	}
}

// Members returns all member ids of a community.
// Paging ends on the first empty page after the initial one.
func (s *Service) Members(ctx context.Context, groupID int64) ([]int64, error) {
	members, err := s.page(ctx, groupID, 0)
	if err != nil {
		return nil, err
	}

	for offset := PageSize; ; offset += PageSize {
		next, err := s.page(ctx, groupID, offset)
		if err != nil {
			return nil, err
		}
		members = append(members, next...)
		s.logger.Info("loaded members page", "group_id", groupID, "offset", offset, "page", len(next), "total", len(members))

		if len(next) == 0 {
			break
		}

		if err := wait(ctx, s.delay); err != nil {
			return nil, err
		}
	}

	s.logger.Info("loaded members", "group_id", groupID, "count", len(members))
	return members, nil
}

func (s *Service) page(ctx context.Context, groupID int64, offset int) ([]int64, error) {
	ids, err := s.vk.GetMembersPage(ctx, groupID, offset, PageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching members of group %d at offset %d: %w", groupID, offset, err)
	}
	return ids, nil
}

// Overlap returns the watched ids that are members, in watched order.
// Each watched id appears at most once however often it occurs in members.
func Overlap(watched, members []int64) []int64 {
	set := make(map[int64]struct{}, len(members))
	for _, id := range members {
		set[id] = struct{}{}
	}

	var res []int64
	for _, id := range watched {
		if _, ok := set[id]; ok {
			res = append(res, id)
		}
	}
	return res
}

// wait blocks for d unless ctx is done first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
