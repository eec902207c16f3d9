package reporting

import (
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// AssembleReport mapeia o resultado do pipeline para o formato de resposta
func AssembleReport(dateRange domain.DateRange, tz domain.AccountTimezone, totals domain.AggregateTotals, campaigns []*domain.Campaign) *domain.Report {
	views := make([]domain.CampaignView, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign == nil {
			continue
		}
		views = append(views, campaignView(campaign))
	}

	return &domain.Report{
		Success: true,
		Totals:  totals.Rounded(),
		DateRange: domain.DateRangeView{
			Start: utils.FormatDisplayDate(dateRange.Start),
			End:   utils.FormatDisplayDate(dateRange.End),
		},
		Timezone: domain.TimezoneView{
			Name:        tz.Name,
			OffsetHours: tz.OffsetHours,
			Resolved:    tz.Resolved,
		},
		Data: domain.ReportData{
			Campaigns:  views,
			DailySpend: []domain.DailySpendView{},
		},
	}
}

// AssembleDailySpend formata a série diária
func AssembleDailySpend(series []domain.DailySpend) []domain.DailySpendView {
	views := make([]domain.DailySpendView, 0, len(series))
	for _, point := range series {
		views = append(views, domain.DailySpendView{
			Date:  utils.FormatDisplayDate(point.Date),
			Spend: point.Spend.Round(2).InexactFloat64(),
		})
	}
	return views
}

func campaignView(campaign *domain.Campaign) domain.CampaignView {
	ads := make([]domain.AdView, 0, len(campaign.Ads))
	for _, ad := range campaign.Ads {
		if ad == nil {
			continue
		}
		ads = append(ads, adView(ad))
	}

	return domain.CampaignView{
		ID:       campaign.ID,
		Name:     campaign.Name,
		Status:   campaign.Status,
		Insights: roundedOrNil(campaign.Insights),
		Rollup:   campaign.Rollup().Rounded(),
		Ads:      ads,
		Errors:   campaign.Errors,
	}
}

func adView(ad *domain.Ad) domain.AdView {
	images := ad.Images
	if images == nil {
		images = []string{}
	}

	return domain.AdView{
		ID:           ad.ID,
		Name:         ad.Name,
		Status:       ad.Status,
		ThumbnailURL: ad.ThumbnailURL,
		Images:       images,
		Insights:     roundedOrNil(ad.Insights),
		Errors:       ad.Errors,
	}
}

func roundedOrNil(m *domain.InsightMetrics) *domain.MetricsView {
	if m == nil {
		return nil
	}
	view := m.Rounded()
	return &view
}
