package vk

import (
	"context"
	"net/url"
	"strconv"
)

// Counter is a VK counter object such as {"count": 12}
type Counter struct {
	Count int `json:"count"`
}

// WallPost represents a wall post from VK API.
// Counters missing from the payload stay zero.
type WallPost struct {
	ID       int64   `json:"id"`
	OwnerID  int64   `json:"owner_id"`
	FromID   int64   `json:"from_id"`
	Date     int64   `json:"date"` // unix seconds
	Text     string  `json:"text"`
	Comments Counter `json:"comments"`
	Likes    Counter `json:"likes"`
	Reposts  Counter `json:"reposts"`
	Views    Counter `json:"views"`
}

// GetWallInput represents input for wall.get
type GetWallInput struct {
	OwnerID int64 // negative for communities
	Offset  int
	Count   int
}

// GetWallOutput represents output from wall.get
type GetWallOutput struct {
	Count int        `json:"count"`
	Items []WallPost `json:"items"`
}

// GetWall retrieves one page of posts authored by the wall owner, newest first
// GET /wall.get
func (c *Client) GetWall(ctx context.Context, in GetWallInput) (*GetWallOutput, error) {
	params := url.Values{}
	params.Set("owner_id", strconv.FormatInt(in.OwnerID, 10))
	params.Set("filter", "owner")
	params.Set("extended", "1")
	if in.Offset > 0 {
		params.Set("offset", strconv.Itoa(in.Offset))
	}
	if in.Count > 0 {
		params.Set("count", strconv.Itoa(in.Count))
	}

	var out GetWallOutput
	if err := c.call(ctx, "wall.get", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
