package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// GetAdsByCampaignID lista os anúncios já com os insights do período via field expansion
func (c *MetaClient) GetAdsByCampaignID(ctx context.Context, campaignID string, dateRange domain.DateRange, limit int) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", fmt.Sprintf("id,name,status,effective_status,insights.time_range(%s){%s}", timeRange(dateRange), metadomain.InsightFields))
	params.Add("limit", strconv.Itoa(limit))

	var response metadomain.AdList
	if err := c.get(ctx, campaignID+"/ads", params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Ad{}, nil
	}

	return response.Data, nil
}

func (c *MetaClient) GetAdCreativesByAdID(ctx context.Context, adID string) ([]metadomain.AdCreative, error) {
	params := url.Values{}
	params.Add("fields", "id,name,image_url,thumbnail_url,object_story_spec")

	var response metadomain.AdCreativeList
	if err := c.get(ctx, adID+"/adcreatives", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
