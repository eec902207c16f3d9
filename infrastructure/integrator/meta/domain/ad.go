package metadomain

// Ad vem com os insights aninhados via field expansion
// (insights.time_range({...}){fields}); sem entrega no período o envelope vem vazio.
type Ad struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	Insights        *InsightList `json:"insights"`
}

// FirstInsight retorna o primeiro registro de insights, ou nil se não houver
func (a *Ad) FirstInsight() *Insight {
	if a.Insights == nil || len(a.Insights.Data) == 0 {
		return nil
	}
	return &a.Insights.Data[0]
}

type AdList struct {
	Data   []Ad   `json:"data"`
	Paging Paging `json:"paging"`
}
