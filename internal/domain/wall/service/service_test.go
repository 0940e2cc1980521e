package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim/vk-metric/internal/domain/wall/entity"
)

// fakeWall serves a newest-first post history page by page
type fakeWall struct {
	history []entity.Post
	offsets []int
	failAt  int // offset that returns err, -1 for none
	err     error
}

func newFakeWall(history ...[]entity.Post) *fakeWall {
	f := &fakeWall{failAt: -1}
	for _, h := range history {
		f.history = append(f.history, h...)
	}
	return f
}

func (f *fakeWall) GetWallPage(_ context.Context, _ int64, offset, count int) ([]entity.Post, error) {
	f.offsets = append(f.offsets, offset)
	if offset == f.failAt {
		return nil, f.err
	}
	if offset >= len(f.history) {
		return []entity.Post{}, nil
	}
	end := offset + count
	if end > len(f.history) {
		end = len(f.history)
	}
	return f.history[offset:end], nil
}

func postsIn(n, year int, month time.Month) []entity.Post {
	posts := make([]entity.Post, n)
	for i := range posts {
		posts[i] = entity.Post{
			ID:       int64(i),
			Date:     time.Date(year, month, 15, 12, 0, 0, 0, time.UTC),
			Comments: 1,
		}
	}
	return posts
}

// scriptedWall returns the scripted pages in call order, then empty pages
type scriptedWall struct {
	pages   [][]entity.Post
	offsets []int
}

func (f *scriptedWall) GetWallPage(_ context.Context, _ int64, offset, _ int) ([]entity.Post, error) {
	call := len(f.offsets)
	f.offsets = append(f.offsets, offset)
	if call >= len(f.pages) {
		return []entity.Post{}, nil
	}
	return f.pages[call], nil
}

func newService(vk VKClient) *Service {
	return New(vk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPostsOfMonth_SinglePartialPage(t *testing.T) {
	wall := newFakeWall(postsIn(40, 2020, time.May), postsIn(10, 2020, time.April))

	got, err := newService(wall).PostsOfMonth(context.Background(), -1, entity.Window{Year: 2020, Month: time.May, Day: 31})
	require.NoError(t, err)
	assert.Len(t, got, 40)
	assert.Equal(t, []int{0}, wall.offsets)
}

func TestPostsOfMonth_FullFirstPageRequestsMore(t *testing.T) {
	// exactly one page of history, the oldest post still in the target month
	wall := newFakeWall(postsIn(PageSize, 2020, time.May))

	got, err := newService(wall).PostsOfMonth(context.Background(), 1, entity.Window{Year: 2020, Month: time.May, Day: 20})
	require.NoError(t, err)
	assert.Len(t, got, PageSize)
	assert.Equal(t, []int{0, PageSize}, wall.offsets)
}

func TestPostsOfMonth_FiltersOvershootPage(t *testing.T) {
	// second page ends two months before the target month
	wall := newFakeWall(
		postsIn(180, 2020, time.May),
		postsIn(20, 2020, time.March),
		postsIn(100, 2020, time.February),
	)

	got, err := newService(wall).PostsOfMonth(context.Background(), -5, entity.Window{Year: 2020, Month: time.May, Day: 10})
	require.NoError(t, err)
	assert.Len(t, got, 180)
	for _, p := range got {
		assert.Equal(t, time.May, p.Date.Month())
	}
	assert.Equal(t, []int{0, 100}, wall.offsets)
}

func TestPostsOfMonth_PagesThroughNewerMonths(t *testing.T) {
	wall := newFakeWall(
		postsIn(100, 2020, time.March),
		postsIn(100, 2020, time.February),
		postsIn(100, 2020, time.January),
		postsIn(100, 2019, time.December),
		postsIn(50, 2019, time.November),
	)

	got, err := newService(wall).PostsOfMonth(context.Background(), 7, entity.Window{Year: 2020, Month: time.January, Day: 31})
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.Equal(t, []int{0, 100, 200, 300}, wall.offsets)
}

func TestPostsOfMonth_YearWraparound(t *testing.T) {
	// the target is December, a page ending in January of the next year must not stop paging
	wall := newFakeWall(
		postsIn(100, 2020, time.January),
		postsIn(100, 2020, time.January),
		postsIn(100, 2019, time.December),
		postsIn(100, 2019, time.November),
	)

	got, err := newService(wall).PostsOfMonth(context.Background(), 7, entity.Window{Year: 2019, Month: time.December, Day: 31})
	require.NoError(t, err)
	assert.Len(t, got, 100)
	assert.Equal(t, []int{0, 100, 200, 300}, wall.offsets)
}

func TestPostsOfMonth_OlderYearStops(t *testing.T) {
	wall := newFakeWall(
		postsIn(100, 2020, time.January),
		postsIn(100, 2018, time.January),
		postsIn(100, 2017, time.January),
	)

	got, err := newService(wall).PostsOfMonth(context.Background(), 7, entity.Window{Year: 2020, Month: time.January, Day: 5})
	require.NoError(t, err)
	assert.Len(t, got, 100, "same month of an older year is filtered out")
	assert.Equal(t, []int{0, 100}, wall.offsets)
}

func TestPostsOfMonth_ShortPageInsideWindowKeepsPaging(t *testing.T) {
	wall := &scriptedWall{pages: [][]entity.Post{
		postsIn(PageSize, 2020, time.May),
		postsIn(PageSize-1, 2020, time.May),
		postsIn(PageSize, 2020, time.May),
		postsIn(PageSize, 2020, time.April),
	}}

	got, err := newService(wall).PostsOfMonth(context.Background(), -1, entity.Window{Year: 2020, Month: time.May, Day: 31})
	require.NoError(t, err)
	assert.Len(t, got, 3*PageSize-1)
	assert.Equal(t, []int{0, 100, 200, 300}, wall.offsets)
}

func TestPostsOfMonth_EmptyPageStops(t *testing.T) {
	wall := &scriptedWall{pages: [][]entity.Post{
		postsIn(PageSize, 2020, time.May),
		postsIn(30, 2020, time.May),
	}}

	got, err := newService(wall).PostsOfMonth(context.Background(), -1, entity.Window{Year: 2020, Month: time.May, Day: 31})
	require.NoError(t, err)
	assert.Len(t, got, PageSize+30)
	assert.Equal(t, []int{0, 100, 200}, wall.offsets)
}

func TestPostsOfMonth_RemoteErrorAborts(t *testing.T) {
	remoteErr := errors.New("too many requests per second")
	wall := newFakeWall(postsIn(300, 2020, time.May))
	wall.failAt = 200
	wall.err = remoteErr

	got, err := newService(wall).PostsOfMonth(context.Background(), 7, entity.Window{Year: 2020, Month: time.May, Day: 5})
	assert.ErrorIs(t, err, remoteErr)
	assert.Nil(t, got)
}

func TestNeedMore(t *testing.T) {
	w := entity.Window{Year: 2021, Month: time.March}

	tests := []struct {
		name   string
		oldest time.Time
		size   int
		want   bool
	}{
		{"same month", time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC), PageSize, true},
		{"next month", time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC), PageSize, true},
		{"next year", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), PageSize, true},
		{"previous month", time.Date(2021, time.February, 28, 0, 0, 0, 0, time.UTC), PageSize, false},
		{"previous year", time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC), PageSize, false},
		{"short page in window", time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC), PageSize - 1, true},
		{"short page before window", time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC), 3, false},
		{"empty page", time.Time{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := make([]entity.Post, tt.size)
			if tt.size > 0 {
				page[tt.size-1].Date = tt.oldest
			}
			assert.Equal(t, tt.want, needMore(page, w))
		})
	}
}
