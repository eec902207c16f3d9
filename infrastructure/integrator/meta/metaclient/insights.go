package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type apiTimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// timeRange monta o objeto JSON {since, until} em YYYY-MM-DD
func timeRange(dateRange domain.DateRange) string {
	encoded, _ := json.Marshal(apiTimeRange{
		Since: utils.FormatAPIDate(dateRange.Start),
		Until: utils.FormatAPIDate(dateRange.End),
	})
	return string(encoded)
}

// GetCampaignInsights retorna nil sem erro quando a campanha não teve entrega no período
func (c *MetaClient) GetCampaignInsights(ctx context.Context, campaignID string, dateRange domain.DateRange) (*metadomain.Insight, error) {
	params := url.Values{}
	params.Add("fields", "campaign_id,"+metadomain.InsightFields)
	params.Add("time_range", timeRange(dateRange))
	params.Add("level", "campaign")

	var response metadomain.InsightList
	if err := c.get(ctx, campaignID+"/insights", params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

// GetAccountDailySpend traz o gasto da conta dia a dia (time_increment=1), seguindo todas as páginas
func (c *MetaClient) GetAccountDailySpend(ctx context.Context, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("fields", "spend,date_start,date_stop")
	params.Add("time_range", timeRange(dateRange))
	params.Add("level", "account")
	params.Add("time_increment", "1")
	params.Add("limit", "500")

	var response metadomain.InsightList
	if err := c.get(ctx, NormalizeAccountID(accountID)+"/insights", params, &response); err != nil {
		return nil, err
	}

	return followPages(ctx, c, response.Data, response.Paging.Next)
}
