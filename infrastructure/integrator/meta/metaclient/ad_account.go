package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name,timezone_name,timezone_offset_hours_utc")

	var response metadomain.AdAccount
	if err := c.get(ctx, NormalizeAccountID(accountID), params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
