package meta

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// FetchDailySpend traz a série de gasto diário da conta no intervalo
func (s *MetaIntegrator) FetchDailySpend(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.DailySpend, error) {
	if err := s.throttle.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "daily spend")
	}

	rows, err := s.Client.GetAccountDailySpend(ctx, accountID, dateRange)
	if err != nil {
		s.observe(ctx, err)
		return nil, errors.Wrap(err, "daily spend")
	}

	logger := log.ForContext(ctx).WithField("account_id", accountID)

	series := make([]domain.DailySpend, 0, len(rows))
	for _, row := range rows {
		date, err := utils.ParseAPIDate(row.DateStart)
		if err != nil {
			logger.WithField("date_start", row.DateStart).Warn("insights: skipping daily spend row with invalid date")
			continue
		}

		spend := decimal.Zero
		if row.Spend != "" {
			spend, err = decimal.NewFromString(row.Spend)
			if err != nil {
				logger.WithField("spend_value", row.Spend).Warn("insights: error converting daily spend to decimal")
				spend = decimal.Zero
			}
		}

		series = append(series, domain.DailySpend{Date: date, Spend: spend})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}
