package vk

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

// Group represents a community from groups.getById
type Group struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ScreenName   string `json:"screen_name"`
	MembersCount int    `json:"members_count"`
}

// GetGroup retrieves a community with its member count
// GET /groups.getById
func (c *Client) GetGroup(ctx context.Context, groupID int64) (*Group, error) {
	params := url.Values{}
	params.Set("group_id", strconv.FormatInt(groupID, 10))
	params.Set("fields", "members_count")

	var out []Group
	if err := c.call(ctx, "groups.getById", params, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &RemoteError{Method: "groups.getById", Err: errors.New("empty group list")}
	}

	return &out[0], nil
}

// GetMembersInput represents input for groups.getMembers
type GetMembersInput struct {
	GroupID int64
	Offset  int
	Count   int
}

// GetMembersOutput represents output from groups.getMembers
type GetMembersOutput struct {
	Count int     `json:"count"`
	Items []int64 `json:"items"`
}

// GetMembers retrieves one page of community member ids in ascending order
// GET /groups.getMembers
func (c *Client) GetMembers(ctx context.Context, in GetMembersInput) (*GetMembersOutput, error) {
	params := url.Values{}
	params.Set("group_id", strconv.FormatInt(in.GroupID, 10))
	params.Set("sort", "id_asc")
	params.Set("offset", strconv.Itoa(in.Offset))
	if in.Count > 0 {
		params.Set("count", strconv.Itoa(in.Count))
	}

	var out GetMembersOutput
	if err := c.call(ctx, "groups.getMembers", params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
