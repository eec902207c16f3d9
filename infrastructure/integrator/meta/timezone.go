package meta

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// ResolveTimezone busca o fuso da conta. Nunca falha: qualquer erro cai no fuso padrão (UTC).
func (s *MetaIntegrator) ResolveTimezone(ctx context.Context, accountID string) domain.AccountTimezone {
	logger := log.ForContext(ctx).WithField("account_id", accountID)

	if err := s.throttle.Wait(ctx); err != nil {
		logger.WithField("error", err.Error()).Warn("meta: timezone lookup skipped, using UTC")
		return domain.DefaultTimezone()
	}

	account, err := s.Client.GetAdAccount(ctx, accountID)
	if err != nil {
		s.observe(ctx, err)
		logger.WithField("error", err.Error()).Warn("meta: failed to resolve account timezone, using UTC")
		return domain.DefaultTimezone()
	}

	if account == nil || account.TimezoneOffsetHoursUTC == nil {
		logger.Warn("meta: account timezone missing from response, using UTC")
		return domain.DefaultTimezone()
	}

	offset := *account.TimezoneOffsetHoursUTC
	name := account.TimezoneName
	if name == "" {
		name = fmt.Sprintf("UTC%+g", offset)
	}

	logger.WithFields(log.Fields{
		"timezone": name,
		"offset":   offset,
	}).Debug("meta: account timezone resolved")

	return domain.AccountTimezone{
		OffsetHours: offset,
		Name:        name,
		Resolved:    true,
	}
}
