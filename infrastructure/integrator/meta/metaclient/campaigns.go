package metaclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

type filter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// GetCampaignsByAccountID lista as campanhas da conta; limit é o tamanho de cada página
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accountID string, statuses []string, limit int) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,effective_status")
	params.Add("limit", strconv.Itoa(limit))

	if len(statuses) > 0 {
		filtering, err := json.Marshal([]filter{{Field: "effective_status", Operator: "IN", Value: statuses}})
		if err != nil {
			return nil, errors.Wrap(err, "meta: encode campaign filter")
		}
		params.Add("filtering", string(filtering))
	}

	var response metadomain.CampaignList
	if err := c.get(ctx, NormalizeAccountID(accountID)+"/campaigns", params, &response); err != nil {
		return nil, err
	}

	campaigns, err := followPages(ctx, c, response.Data, response.Paging.Next)
	if err != nil {
		return nil, err
	}

	if campaigns == nil {
		return []metadomain.Campaign{}, nil
	}

	return campaigns, nil
}
