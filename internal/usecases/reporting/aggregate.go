package reporting

import "github.com/vfg2006/ads-dashboard-api/internal/domain"

// Aggregate soma os contadores de todos os anúncios da árvore.
// Totais são sempre a soma dos rollups das campanhas, nunca a média de razões já derivadas.
func Aggregate(campaigns []*domain.Campaign) domain.AggregateTotals {
	totals := domain.AggregateTotals{}
	for _, campaign := range campaigns {
		if campaign == nil {
			continue
		}
		totals = totals.Add(campaign.Rollup())
	}
	return totals
}
