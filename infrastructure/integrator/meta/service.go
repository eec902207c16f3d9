package meta

import (
	"context"

	"github.com/shopspring/decimal"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/throttle"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg      *config.Config
	Client   metaclient.Client
	throttle *throttle.Throttle
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:      cfg,
		Client:   client,
		throttle: throttle.New(cfg.Report.RequestDelay(), cfg.Report.ThrottleBackoff()),
	}
}

// observe desacelera as próximas requisições quando a API sinaliza limite de uso
func (s *MetaIntegrator) observe(ctx context.Context, err error) {
	if err != nil && metaclient.IsThrottled(err) {
		log.ForContext(ctx).WithField("error", err.Error()).Warn("meta: rate limited, backing off")
		s.throttle.Penalize()
	}
}

// FactoryInsightMetrics converte o registro textual da Graph API em contadores.
// Campos malformados contam como zero e geram um aviso.
func FactoryInsightMetrics(ctx context.Context, insight *metadomain.Insight) domain.InsightMetrics {
	if insight == nil {
		return domain.InsightMetrics{}
	}

	logger := log.ForContext(ctx)

	spend := decimal.Zero
	if insight.Spend != "" {
		parsed, err := decimal.NewFromString(insight.Spend)
		if err != nil {
			logger.WithFields(log.Fields{
				"spend_value": insight.Spend,
				"error":       err.Error(),
			}).Warn("insights: error converting spend to decimal")
		} else {
			spend = parsed
		}
	}

	count := func(field, value string) int64 {
		n, err := utils.ParseCount(value)
		if err != nil {
			logger.WithFields(log.Fields{
				"field": field,
				"value": value,
				"error": err.Error(),
			}).Warn("insights: error converting counter to integer")
			return 0
		}
		return n
	}

	actions := metadomain.DecodeActions(insight.Actions)
	if len(actions.Invalid) > 0 {
		logger.WithField("action_types", actions.Invalid).Warn("insights: ignoring actions with invalid values")
	}

	return domain.InsightMetrics{
		Spend:                         spend,
		Impressions:                   count("impressions", insight.Impressions),
		Clicks:                        count("clicks", insight.Clicks),
		LinkClicks:                    count("inline_link_clicks", insight.InlineLinkClicks),
		Reach:                         count("reach", insight.Reach),
		Purchases:                     actions.Purchases,
		MessagingConversationsStarted: actions.MessagingConversationsStarted,
	}
}
