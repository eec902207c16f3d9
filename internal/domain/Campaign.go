package domain

// Campaign é um nó do primeiro nível da hierarquia.
// Insights nil significa que a busca de insights da campanha falhou.
type Campaign struct {
	ID       string
	Name     string
	Status   string
	Insights *InsightMetrics
	Ads      []*Ad
	Errors   []string
}

// Ad é um nó folha. Só os insights dos anúncios entram nos totais.
type Ad struct {
	ID           string
	Name         string
	Status       string
	ThumbnailURL string
	Images       []string
	Insights     *InsightMetrics
	Errors       []string
}

// Rollup soma os insights de todos os anúncios da campanha
func (c *Campaign) Rollup() InsightMetrics {
	items := make([]*InsightMetrics, 0, len(c.Ads))
	for _, ad := range c.Ads {
		if ad == nil {
			continue
		}
		items = append(items, ad.Insights)
	}
	return SumInsights(items...)
}

func (c *Campaign) AddError(msg string) {
	c.Errors = append(c.Errors, msg)
}

func (a *Ad) AddError(msg string) {
	a.Errors = append(a.Errors, msg)
}
