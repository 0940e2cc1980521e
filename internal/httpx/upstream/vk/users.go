package vk

import (
	"context"
	"net/url"
	"strconv"
)

// countOnly is the shape of list methods called with count=0
type countOnly struct {
	Count int `json:"count"`
}

// GetFriendsCount returns the number of friends of a user
// GET /friends.get
func (c *Client) GetFriendsCount(ctx context.Context, userID int64) (int, error) {
	return c.count(ctx, "friends.get", userID)
}

// GetFollowersCount returns the number of followers of a user
// GET /users.getFollowers
func (c *Client) GetFollowersCount(ctx context.Context, userID int64) (int, error) {
	return c.count(ctx, "users.getFollowers", userID)
}

func (c *Client) count(ctx context.Context, method string, userID int64) (int, error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))
	params.Set("count", "0")
	params.Set("offset", "0")

	var out countOnly
	if err := c.call(ctx, method, params, &out); err != nil {
		return 0, err
	}

	return out.Count, nil
}
