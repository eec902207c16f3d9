package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	cfg        *config.Config
	fetcher    HierarchyFetcher
	timezones  TimezoneResolver
	dailySpend DailySpendFetcher
	now        func() time.Time
}

// NewService cria o serviço de relatório. dailySpend é opcional.
func NewService(cfg *config.Config, fetcher HierarchyFetcher, timezones TimezoneResolver, dailySpend DailySpendFetcher) *Service {
	return &Service{
		cfg:        cfg,
		fetcher:    fetcher,
		timezones:  timezones,
		dailySpend: dailySpend,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado para calcular "hoje"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetReport(ctx context.Context, since, until string) (report *domain.Report, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveReport(resultLabel(err), time.Since(started))
	}()

	logger := log.ForContext(ctx)

	if s.cfg.Meta.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if s.cfg.Meta.AdAccountID == "" {
		return nil, ErrMissingAccountID
	}

	requested, err := ParseRequestedRange(since, until)
	if err != nil {
		return nil, err
	}

	accountID := s.cfg.Meta.AdAccountID

	// "hoje" depende do fuso da conta, por isso a checagem de limites vem depois
	tz := s.timezones.ResolveTimezone(ctx, accountID)

	dateRange, err := requested.Resolve(tz.Today(s.now()), s.cfg.Report.MaxLookbackDays)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"account_id": accountID,
		"since":      dateRange.Start.Format(time.DateOnly),
		"until":      dateRange.End.Format(time.DateOnly),
		"timezone":   tz.Name,
	}).Info("report: building report")

	var (
		campaigns []*domain.Campaign
		treeErr   error
		series    []domain.DailySpend
		seriesErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		campaigns, treeErr = s.fetcher.FetchTree(ctx, accountID, *dateRange)
		return nil
	})
	if s.dailySpend != nil {
		g.Go(func() error {
			series, seriesErr = s.dailySpend.FetchDailySpend(ctx, accountID, *dateRange)
			return nil
		})
	}
	_ = g.Wait()

	if treeErr != nil {
		logger.WithField("error", treeErr.Error()).Error("report: campaign listing failed")
		return nil, &FatalError{Op: "failed to fetch campaigns", Err: errors.Cause(treeErr)}
	}

	totals := Aggregate(campaigns)
	report = AssembleReport(*dateRange, tz, totals, campaigns)

	if seriesErr != nil {
		logger.WithField("error", seriesErr.Error()).Warn("report: daily spend unavailable")
		report.Errors = append(report.Errors, fmt.Sprintf("daily spend unavailable: %v", seriesErr))
	} else {
		report.Data.DailySpend = AssembleDailySpend(series)
	}

	logger.WithFields(log.Fields{
		"campaigns":   len(campaigns),
		"spend":       totals.Spend.StringFixed(2),
		"impressions": totals.Impressions,
	}).Info("report: report built")

	return report, nil
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}

	var configErr *ConfigurationError
	var validationErr *ValidationError
	switch {
	case errors.As(err, &configErr):
		return "configuration_error"
	case errors.As(err, &validationErr):
		return "validation_error"
	default:
		return "fatal_error"
	}
}
