package policy

import (
	"context"
	"fmt"
	"log/slog"

	account "github.com/vadim/vk-metric/internal/domain/account/entity"
	"github.com/vadim/vk-metric/internal/domain/report/dao"
	"github.com/vadim/vk-metric/internal/domain/report/entity"
	wall "github.com/vadim/vk-metric/internal/domain/wall/entity"
)

// WallService defines the interface for loading the posts of a month
// This interface is defined here (consumer) not in the wall package (provider)
type WallService interface {
	PostsOfMonth(ctx context.Context, ownerID int64, w wall.Window) ([]wall.Post, error)
}

// FollowerService defines the interface for counting an account's audience
type FollowerService interface {
	Followers(ctx context.Context, acc account.Account) (int, error)
}

// Policy orchestrates building monthly reports
type Policy struct {
	wall      WallService
	followers FollowerService
	sink      dao.ReportSink
	logger    *slog.Logger
}

// New creates a new report policy
func New(wall WallService, followers FollowerService, sink dao.ReportSink, logger *slog.Logger) *Policy {
	return &Policy{
		wall:      wall,
		followers: followers,
		sink:      sink,
		logger:    logger,
	}
}

// BuildReport computes the report of one account reference for the window
func (p *Policy) BuildReport(ctx context.Context, ref string, w wall.Window) (*entity.Report, error) {
	acc, err := account.Parse(ref)
	if err != nil {
		return nil, err
	}

	posts, err := p.wall.PostsOfMonth(ctx, acc.OwnerID(), w)
	if err != nil {
		return nil, fmt.Errorf("loading posts of %s: %w", ref, err)
	}

	subs, err := p.followers.Followers(ctx, acc)
	if err != nil {
		return nil, fmt.Errorf("loading followers of %s: %w", ref, err)
	}

	pubRate, err := entity.PostRate(len(posts), w.Day)
	if err != nil {
		return nil, err
	}

	report := entity.NewReport(ref, subs, len(posts), pubRate, entity.Aggregate(entity.MetricsOf(posts)))
	return &report, nil
}

// ParseAccounts builds reports for every reference in order and hands them to the sink.
// The first failure aborts the whole batch.
func (p *Policy) ParseAccounts(ctx context.Context, refs []string, w wall.Window) ([]entity.Report, error) {
	reports := make([]entity.Report, 0, len(refs))
	for _, ref := range refs {
		report, err := p.BuildReport(ctx, ref, w)
		if err != nil {
			return nil, err
		}
		p.logger.Info("account parsed", "url", ref, "window", w.String(), "pubs", report.Pubs, "subs", report.Subs)
		reports = append(reports, *report)
	}

	if err := p.sink.Save(ctx, w, reports); err != nil {
		return nil, fmt.Errorf("saving reports: %w", err)
	}

	return reports, nil
}
