package app

import (
	"context"
	"time"

	wall "github.com/vadim/vk-metric/internal/domain/wall/entity"
	"github.com/vadim/vk-metric/internal/httpx/upstream/vk"
)

// vkAdapter adapts vk.Client to the domain service interfaces
type vkAdapter struct {
	client *vk.Client
	loc    *time.Location
}

func (a *vkAdapter) GetWallPage(ctx context.Context, ownerID int64, offset, count int) ([]wall.Post, error) {
	out, err := a.client.GetWall(ctx, vk.GetWallInput{
		OwnerID: ownerID,
		Offset:  offset,
		Count:   count,
	})
	if err != nil {
		return nil, err
	}

	posts := make([]wall.Post, 0, len(out.Items))
	for _, item := range out.Items {
		posts = append(posts, wall.Post{
			ID:       item.ID,
			Date:     time.Unix(item.Date, 0).In(a.loc),
			Comments: item.Comments.Count,
			Views:    item.Views.Count,
			Likes:    item.Likes.Count,
			Shares:   item.Reposts.Count,
		})
	}
	return posts, nil
}

func (a *vkAdapter) GetGroupMembersCount(ctx context.Context, groupID int64) (int, error) {
	group, err := a.client.GetGroup(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return group.MembersCount, nil
}

func (a *vkAdapter) GetFriendsCount(ctx context.Context, userID int64) (int, error) {
	return a.client.GetFriendsCount(ctx, userID)
}

func (a *vkAdapter) GetFollowersCount(ctx context.Context, userID int64) (int, error) {
	return a.client.GetFollowersCount(ctx, userID)
}

func (a *vkAdapter) GetMembersPage(ctx context.Context, groupID int64, offset, count int) ([]int64, error) {
	out, err := a.client.GetMembers(ctx, vk.GetMembersInput{
		GroupID: groupID,
		Offset:  offset,
		Count:   count,
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}
