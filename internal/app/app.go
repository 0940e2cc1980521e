package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vadim/vk-metric/internal/config"
	"github.com/vadim/vk-metric/internal/controller/console"
	accountservice "github.com/vadim/vk-metric/internal/domain/account/service"
	memberservice "github.com/vadim/vk-metric/internal/domain/member/service"
	"github.com/vadim/vk-metric/internal/domain/report/dao"
	"github.com/vadim/vk-metric/internal/domain/report/policy"
	wall "github.com/vadim/vk-metric/internal/domain/wall/entity"
	wallservice "github.com/vadim/vk-metric/internal/domain/wall/service"
	"github.com/vadim/vk-metric/internal/httpx/upstream/vk"
)

// App is the main application container
type App struct {
	cfg    config.Config
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time

	// Domain layers
	reportPolicy  *policy.Policy
	memberService *memberservice.Service

	reporter *console.Reporter
}

// Option configures an App
type Option func(*App)

// WithOutput redirects the console reports
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.reporter = console.NewReporter(w)
	}
}

// WithLogger replaces the logger built from configuration
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithClock sets the time source used when no parsing date is configured
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// New creates and initializes the application
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	loc, err := cfg.Parse.Location()
	if err != nil {
		return nil, fmt.Errorf("initializing timezone: %w", err)
	}

	app := &App{
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
		reporter: console.NewReporter(os.Stdout),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = NewLogger(cfg.Log, os.Stderr)
	}
	app.logger = app.logger.With("run_id", uuid.NewString())

	if err := app.initDomains(ctx); err != nil {
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	return app, nil
}

// NewLogger builds a slog logger from the log settings
func NewLogger(cfg config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// initDomains initializes domain layers (DAO, Service, Policy)
func (a *App) initDomains(_ context.Context) error {
	vkClient := vk.New(
		a.cfg.VK.AccessToken,
		vk.WithBaseURL(a.cfg.VK.BaseURL),
		vk.WithAPIVersion(a.cfg.VK.APIVersion),
		vk.WithTimeout(a.cfg.VK.Timeout),
	)
	adapter := &vkAdapter{client: vkClient, loc: a.loc}

	wallService := wallservice.New(adapter, a.logger)
	accountService := accountservice.New(adapter)
	a.memberService = memberservice.New(adapter, a.cfg.VK.MemberPageDelay, a.logger)

	// Reports are not stored between runs
	sink := dao.NewNopSink(a.logger)

	a.reportPolicy = policy.New(wallService, accountService, sink, a.logger)

	return nil
}

// Run builds the monthly reports and then checks group membership
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Parse.Accounts) > 0 {
		if err := a.runReports(ctx); err != nil {
			return err
		}
	}

	for _, groupID := range a.cfg.Members.Groups {
		if err := a.runMembership(ctx, groupID); err != nil {
			return err
		}
	}

	a.logger.Info("run complete")
	return nil
}

func (a *App) runReports(ctx context.Context) error {
	date, err := a.cfg.Parse.ParsingDate(a.now())
	if err != nil {
		return fmt.Errorf("resolving parsing date: %w", err)
	}
	w := wall.WindowOf(date)

	a.logger.Info("parsing accounts", "window", w.String(), "day", w.Day, "accounts", len(a.cfg.Parse.Accounts))

	reports, err := a.reportPolicy.ParseAccounts(ctx, a.cfg.Parse.Accounts, w)
	if err != nil {
		return fmt.Errorf("parsing accounts: %w", err)
	}

	for _, r := range reports {
		if err := a.reporter.Report(r); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runMembership(ctx context.Context, groupID int64) error {
	members, err := a.memberService.Members(ctx, groupID)
	if err != nil {
		return fmt.Errorf("loading members of group %d: %w", groupID, err)
	}

	return a.reporter.Membership(console.Membership{
		GroupID: groupID,
		Watched: len(a.cfg.Members.Users),
		Matches: memberservice.Overlap(a.cfg.Members.Users, members),
	})
}
