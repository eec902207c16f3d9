package meta

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testRange = domain.DateRange{
	Start: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Report.MaxConcurrentRequests = 3
	cfg.Report.CampaignsLimit = 100
	cfg.Report.AdsLimit = 50
	cfg.Report.MaxAdsWithCreatives = 10
	cfg.Report.CampaignStatuses = config.DefaultCampaignStatuses
	cfg.Report.PlaceholderImage = config.DefaultPlaceholderImage
	return cfg
}

func adWithInsight(id, spend, impressions, clicks string) metadomain.Ad {
	return metadomain.Ad{
		ID:     id,
		Name:   "Ad " + id,
		Status: "ACTIVE",
		Insights: &metadomain.InsightList{Data: []metadomain.Insight{
			{Spend: spend, Impressions: impressions, Clicks: clicks, Reach: impressions},
		}},
	}
}

func TestFetchTree_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_1", config.DefaultCampaignStatuses, 100).
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha 1", Status: "ACTIVE"},
			{ID: "c2", Name: "Campanha 2", Status: "ACTIVE"},
			{ID: "c3", Name: "Campanha 3", Status: "PAUSED", EffectiveStatus: "CAMPAIGN_PAUSED"},
		}, nil)

	client.EXPECT().
		GetCampaignInsights(gomock.Any(), gomock.Any(), testRange).
		Return(&metadomain.Insight{Spend: "1.00", Impressions: "10"}, nil).
		Times(3)

	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", testRange, 50).
		Return([]metadomain.Ad{adWithInsight("a1", "10.00", "1000", "10")}, nil)
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c2", testRange, 50).
		Return(nil, &metaclient.ApplicationError{Message: "Unsupported get request", Code: 100, StatusCode: 400})
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c3", testRange, 50).
		Return([]metadomain.Ad{adWithInsight("a3", "5.25", "500", "5")}, nil)

	client.EXPECT().
		GetAdCreativesByAdID(gomock.Any(), gomock.Any()).
		Return([]metadomain.AdCreative{}, nil).
		Times(2)

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)

	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Len(t, campaigns[0].Ads, 1)
	assert.Empty(t, campaigns[0].Errors)

	assert.Equal(t, "c2", campaigns[1].ID)
	assert.NotNil(t, campaigns[1].Ads)
	assert.Empty(t, campaigns[1].Ads)
	require.Len(t, campaigns[1].Errors, 1)
	assert.Contains(t, campaigns[1].Errors[0], "ads unavailable")
	assert.NotNil(t, campaigns[1].Insights)

	assert.Equal(t, "CAMPAIGN_PAUSED", campaigns[2].Status)

	total := campaigns[0].Rollup().Add(campaigns[1].Rollup()).Add(campaigns[2].Rollup())
	assert.True(t, decimal.RequireFromString("15.25").Equal(total.Spend))
	assert.Equal(t, int64(1500), total.Impressions)
}

func TestFetchTree_CampaignListingFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), "act_1", gomock.Any(), gomock.Any()).
		Return(nil, &metaclient.ApplicationError{Message: "Invalid OAuth access token", Code: 190})

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.Error(t, err)
	assert.Nil(t, campaigns)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestFetchTree_CampaignInsightsFailureAndEmptyInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.Campaign{{ID: "c1"}, {ID: "c2"}}, nil)

	client.EXPECT().
		GetCampaignInsights(gomock.Any(), "c1", gomock.Any()).
		Return(nil, &metaclient.TransportError{Op: "request", Err: context.DeadlineExceeded})
	client.EXPECT().
		GetCampaignInsights(gomock.Any(), "c2", gomock.Any()).
		Return(nil, nil)

	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.Ad{}, nil).
		Times(2)

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Nil(t, campaigns[0].Insights)
	require.Len(t, campaigns[0].Errors, 1)
	assert.Contains(t, campaigns[0].Errors[0], "campaign insights unavailable")

	require.NotNil(t, campaigns[1].Insights)
	assert.True(t, campaigns[1].Insights.Spend.IsZero())
	assert.Empty(t, campaigns[1].Errors)
}

func TestFetchTree_Creatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Report.MaxAdsWithCreatives = 2

	client := mocks.NewMockClient(ctrl)
	integrator := New(cfg, client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.Campaign{{ID: "c1"}}, nil)
	client.EXPECT().
		GetCampaignInsights(gomock.Any(), "c1", gomock.Any()).
		Return(nil, nil)
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", gomock.Any(), gomock.Any()).
		Return([]metadomain.Ad{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}, nil)

	client.EXPECT().
		GetAdCreativesByAdID(gomock.Any(), "a1").
		Return([]metadomain.AdCreative{
			{ImageURL: "https://img/direct.jpg"},
			{ObjectStorySpec: &metadomain.ObjectStorySpec{LinkData: &metadomain.LinkData{Picture: "https://img/story.jpg"}}},
		}, nil)
	client.EXPECT().
		GetAdCreativesByAdID(gomock.Any(), "a2").
		Return(nil, &metaclient.ApplicationError{Message: "boom", Code: 1})

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)

	ads := campaigns[0].Ads
	require.Len(t, ads, 3)

	assert.Equal(t, []string{"https://img/direct.jpg", "https://img/story.jpg"}, ads[0].Images)
	assert.Equal(t, "https://img/direct.jpg", ads[0].ThumbnailURL)

	assert.Empty(t, ads[1].Images)
	assert.Equal(t, config.DefaultPlaceholderImage, ads[1].ThumbnailURL)
	require.Len(t, ads[1].Errors, 1)

	// Acima do limite: sem busca de criativos e sem nota
	assert.Empty(t, ads[2].Images)
	assert.Equal(t, config.DefaultPlaceholderImage, ads[2].ThumbnailURL)
	assert.Empty(t, ads[2].Errors)
}

func TestFetchTree_SingleCreativeWithDirectAndStoryImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.Campaign{{ID: "c1"}}, nil)
	client.EXPECT().
		GetCampaignInsights(gomock.Any(), "c1", gomock.Any()).
		Return(nil, nil)
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", gomock.Any(), gomock.Any()).
		Return([]metadomain.Ad{{ID: "a1"}}, nil)
	client.EXPECT().
		GetAdCreativesByAdID(gomock.Any(), "a1").
		Return([]metadomain.AdCreative{
			{
				ImageURL:     "https://img/direct.jpg",
				ThumbnailURL: "https://img/thumb.jpg",
				ObjectStorySpec: &metadomain.ObjectStorySpec{
					LinkData: &metadomain.LinkData{Picture: "https://img/story.jpg"},
				},
			},
		}, nil)

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)

	ad := campaigns[0].Ads[0]
	assert.Equal(t, []string{"https://img/direct.jpg", "https://img/story.jpg"}, ad.Images)
	assert.Equal(t, "https://img/direct.jpg", ad.ThumbnailURL)
	assert.Empty(t, ad.Errors)
}

func TestFetchTree_BoundedConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Report.MaxConcurrentRequests = 2

	client := mocks.NewMockClient(ctrl)
	integrator := New(cfg, client)

	remote := make([]metadomain.Campaign, 8)
	for i := range remote {
		remote[i] = metadomain.Campaign{ID: string(rune('a' + i))}
	}

	var inFlight, peak int32

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(remote, nil)
	client.EXPECT().
		GetCampaignInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, campaignID string, dr domain.DateRange, limit int) ([]metadomain.Ad, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return []metadomain.Ad{}, nil
		}).
		Times(8)

	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)
	assert.Len(t, campaigns, 8)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestFetchTree_ThrottledResponsePenalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Report.ThrottleBackoffMS = 60
	cfg.Report.MaxConcurrentRequests = 1

	client := mocks.NewMockClient(ctrl)
	integrator := New(cfg, client)

	client.EXPECT().
		GetCampaignsByAccountID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]metadomain.Campaign{{ID: "c1"}, {ID: "c2"}}, nil)
	client.EXPECT().
		GetCampaignInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c1", gomock.Any(), gomock.Any()).
		Return(nil, &metaclient.ApplicationError{Message: "User request limit reached", Code: 17})
	client.EXPECT().
		GetAdsByCampaignID(gomock.Any(), "c2", gomock.Any(), gomock.Any()).
		Return([]metadomain.Ad{}, nil)

	start := time.Now()
	campaigns, err := integrator.FetchTree(context.Background(), "act_1", testRange)
	require.NoError(t, err)

	assert.Len(t, campaigns, 2)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
