package meta

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func TestResolveTimezone(t *testing.T) {
	tests := []struct {
		name     string
		account  *metadomain.AdAccount
		err      error
		expected domain.AccountTimezone
	}{
		{
			name:     "Fuso resolvido",
			account:  &metadomain.AdAccount{TimezoneName: "America/Sao_Paulo", TimezoneOffsetHoursUTC: float64Ptr(-3)},
			expected: domain.AccountTimezone{OffsetHours: -3, Name: "America/Sao_Paulo", Resolved: true},
		},
		{
			name:     "Sem nome usa o offset",
			account:  &metadomain.AdAccount{TimezoneOffsetHoursUTC: float64Ptr(5.5)},
			expected: domain.AccountTimezone{OffsetHours: 5.5, Name: "UTC+5.5", Resolved: true},
		},
		{
			name:     "Resposta sem offset cai no padrão",
			account:  &metadomain.AdAccount{TimezoneName: "Asia/Bangkok"},
			expected: domain.DefaultTimezone(),
		},
		{
			name:     "Erro da API cai no padrão",
			err:      &metaclient.ApplicationError{Message: "Unsupported get request", Code: 100},
			expected: domain.DefaultTimezone(),
		},
		{
			name:     "Erro de transporte cai no padrão",
			err:      &metaclient.TransportError{Op: "request", Err: context.DeadlineExceeded},
			expected: domain.DefaultTimezone(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().GetAdAccount(gomock.Any(), "act_1").Return(tt.account, tt.err)

			tz := New(testConfig(), client).ResolveTimezone(context.Background(), "act_1")
			assert.Equal(t, tt.expected, tz)
		})
	}
}

func TestFactoryInsightMetrics(t *testing.T) {
	insight := &metadomain.Insight{
		Spend:            "123.45",
		Impressions:      "10000",
		Clicks:           "150",
		InlineLinkClicks: "120",
		Reach:            "8000",
		Actions: []metadomain.Action{
			{ActionType: "omni_purchase", Value: "7"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "6"},
			{ActionType: metadomain.MessagingConversationStartedActionType, Value: "30"},
		},
	}

	m := FactoryInsightMetrics(context.Background(), insight)

	assert.True(t, decimal.RequireFromString("123.45").Equal(m.Spend))
	assert.Equal(t, int64(10000), m.Impressions)
	assert.Equal(t, int64(150), m.Clicks)
	assert.Equal(t, int64(120), m.LinkClicks)
	assert.Equal(t, int64(8000), m.Reach)
	assert.Equal(t, int64(6), m.Purchases)
	assert.Equal(t, int64(30), m.MessagingConversationsStarted)
}

func TestFactoryInsightMetrics_MalformedFieldsCountAsZero(t *testing.T) {
	m := FactoryInsightMetrics(context.Background(), &metadomain.Insight{Spend: "abc", Impressions: "1.5e3", Clicks: "7"})

	assert.True(t, m.Spend.IsZero())
	assert.Equal(t, int64(0), m.Impressions)
	assert.Equal(t, int64(7), m.Clicks)

	assert.Equal(t, domain.InsightMetrics{}, FactoryInsightMetrics(context.Background(), nil))
}

func TestFetchDailySpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetAccountDailySpend(gomock.Any(), "act_1", testRange).
		Return([]metadomain.Insight{
			{DateStart: "2024-03-03", Spend: "4.10"},
			{DateStart: "2024-03-02", Spend: "2.00"},
			{DateStart: "bad", Spend: "1"},
		}, nil)

	series, err := New(testConfig(), client).FetchDailySpend(context.Background(), "act_1", testRange)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, testRange.Start, series[0].Date)
	assert.True(t, decimal.RequireFromString("2").Equal(series[0].Spend))
	assert.True(t, decimal.RequireFromString("4.1").Equal(series[1].Spend))
}
