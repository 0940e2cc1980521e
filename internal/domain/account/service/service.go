package service

import (
	"context"
	"fmt"

	"github.com/vadim/vk-metric/internal/domain/account/entity"
)

// VKClient defines the VK API operations needed to count followers
type VKClient interface {
	GetGroupMembersCount(ctx context.Context, groupID int64) (int, error)
	GetFriendsCount(ctx context.Context, userID int64) (int, error)
	GetFollowersCount(ctx context.Context, userID int64) (int, error)
}

// Service handles account lookups
type Service struct {
	vk VKClient
}

// New creates a new account service
func New(vk VKClient) *Service {
	return &Service{vk: vk}
}

// Followers returns the audience size of an account.
// Communities report their member count, personal profiles friends plus followers.
func (s *Service) Followers(ctx context.Context, acc entity.Account) (int, error) {
	if acc.IsCommunity() {
		count, err := s.vk.GetGroupMembersCount(ctx, acc.RawID)
		if err != nil {
			return 0, fmt.Errorf("getting members count of group %d: %w", acc.RawID, err)
		}
		return count, nil
	}

	friends, err := s.vk.GetFriendsCount(ctx, acc.RawID)
	if err != nil {
		return 0, fmt.Errorf("getting friends count of user %d: %w", acc.RawID, err)
	}

	followers, err := s.vk.GetFollowersCount(ctx, acc.RawID)
	if err != nil {
		return 0, fmt.Errorf("getting followers count of user %d: %w", acc.RawID, err)
	}

	return friends + followers, nil
}
