package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*MetaClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Meta.URL = server.URL + "/v19.0"
	cfg.Meta.AccessToken = "test-token"
	cfg.Meta.RequestTimeout = 2 * time.Second

	return NewClient(cfg).(*MetaClient), server
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantTransport bool
		wantApp       bool
		wantThrottled bool
		wantCode      int
	}{
		{name: "Sucesso", status: 200, body: `{"data":[]}`},
		{name: "Erro dentro de resposta 200", status: 200, body: `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"abc"}}`, wantApp: true, wantCode: 100},
		{name: "Rate limit por código", status: 400, body: `{"error":{"message":"User request limit reached","code":17}}`, wantApp: true, wantThrottled: true, wantCode: 17},
		{name: "Rate limit business use case", status: 400, body: `{"error":{"message":"too many calls","code":80004}}`, wantApp: true, wantThrottled: true, wantCode: 80004},
		{name: "HTTP 429 sem envelope", status: 429, body: `{}`, wantApp: true, wantThrottled: true},
		{name: "Status 500 sem objeto de erro", status: 500, body: `{"data":[]}`, wantApp: true},
		{name: "Campo error que não é objeto", status: 200, body: `{"error":"boom"}`, wantApp: true},
		{name: "Corpo vazio", status: 200, body: ``, wantTransport: true},
		{name: "Corpo HTML", status: 502, body: `<html>bad gateway</html>`, wantTransport: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := classify(tt.status, []byte(tt.body))

			var transportErr *TransportError
			var appErr *ApplicationError

			switch {
			case tt.wantTransport:
				require.Error(t, err)
				assert.True(t, errors.As(err, &transportErr))
				assert.Nil(t, body)
			case tt.wantApp:
				require.Error(t, err)
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.status, appErr.StatusCode)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantThrottled, IsThrottled(err))
			default:
				require.NoError(t, err)
				assert.JSONEq(t, tt.body, string(body))
			}
		})
	}
}

func TestCall_ApplicationErrorFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"trace-1"}}`))
	})

	_, err := client.Call(context.Background(), client.buildURL("act_1/campaigns", nil))

	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Error validating access token", appErr.Message)
	assert.Equal(t, 463, appErr.Subcode)
	assert.Equal(t, "trace-1", appErr.FBTraceID)
	assert.True(t, appErr.IsTokenExpired())
	assert.False(t, appErr.IsThrottled())
	assert.Equal(t, "application_error", Outcome(err))
}

func TestCall_TransportErrorOnUnreachableHost(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Call(context.Background(), client.buildURL("act_1", nil))

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "transport_error", Outcome(err))
}

func TestCall_RespectsContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Call(ctx, client.buildURL("act_1", nil))

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCall_RecordsMetrics(t *testing.T) {
	m := metrics.New()
	metrics.SetGlobal(m)
	t.Cleanup(func() { metrics.SetGlobal(nil) })

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.Call(context.Background(), client.buildURL("123/ads", nil))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemoteRequestsTotal.WithLabelValues("ads", "success")))
}

func TestGetCampaignsByAccountID_Request(t *testing.T) {
	var got url.Values
	var gotPath string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		got = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"1","name":"Camp 1","status":"ACTIVE","effective_status":"ACTIVE"}],"paging":{"cursors":{"before":"a","after":"b"}}}`))
	})

	campaigns, err := client.GetCampaignsByAccountID(context.Background(), "123", []string{"ACTIVE", "PAUSED"}, 100)
	require.NoError(t, err)

	assert.Equal(t, "/v19.0/act_123/campaigns", gotPath)
	assert.Equal(t, "test-token", got.Get("access_token"))
	assert.Equal(t, "100", got.Get("limit"))
	assert.Equal(t, "id,name,status,effective_status", got.Get("fields"))
	assert.JSONEq(t, `[{"field":"effective_status","operator":"IN","value":["ACTIVE","PAUSED"]}]`, got.Get("filtering"))
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Camp 1", campaigns[0].Name)
}

func TestGetAdsByCampaignID_NestedInsights(t *testing.T) {
	var fields string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"data":[
			{"id":"ad1","name":"Ad 1","status":"ACTIVE","insights":{"data":[{"spend":"10.50","impressions":"1000","clicks":"20","actions":[{"action_type":"purchase","value":"2"}]}]}},
			{"id":"ad2","name":"Ad 2","status":"PAUSED"}
		]}`))
	})

	dr := domain.DateRange{
		Start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	ads, err := client.GetAdsByCampaignID(context.Background(), "c1", dr, 50)
	require.NoError(t, err)

	assert.Contains(t, fields, `insights.time_range({"since":"2024-01-31","until":"2024-02-01"})`)
	require.Len(t, ads, 2)
	require.NotNil(t, ads[0].FirstInsight())
	assert.Equal(t, "10.50", ads[0].FirstInsight().Spend)
	assert.Nil(t, ads[1].FirstInsight())
}

func TestGetCampaignInsights_EmptyData(t *testing.T) {
	var query url.Values

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	})

	dr := domain.DateRange{
		Start: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	insight, err := client.GetCampaignInsights(context.Background(), "c9", dr)
	require.NoError(t, err)
	assert.Nil(t, insight)
	assert.JSONEq(t, `{"since":"2024-03-02","until":"2024-03-31"}`, query.Get("time_range"))
	assert.Equal(t, "campaign", query.Get("level"))
}

func TestGetAdAccount_Timezone(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v19.0/act_42", r.URL.Path)
		w.Write([]byte(`{"id":"act_42","timezone_name":"Asia/Bangkok","timezone_offset_hours_utc":7}`))
	})

	account, err := client.GetAdAccount(context.Background(), "act_42")
	require.NoError(t, err)
	require.NotNil(t, account.TimezoneOffsetHoursUTC)
	assert.Equal(t, 7.0, *account.TimezoneOffsetHoursUTC)
	assert.Equal(t, "Asia/Bangkok", account.TimezoneName)
}

func TestGetAccountDailySpend_FollowsPaging(t *testing.T) {
	var serverURL string
	var calls int

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("after") == "cursor2" {
			w.Write([]byte(`{"data":[{"spend":"7.00","date_start":"2024-03-02"}],"paging":{"cursors":{"before":"cursor2"}}}`))
			return
		}

		assert.Equal(t, "/v19.0/act_1/insights", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
		next := serverURL + "/v19.0/act_1/insights?access_token=test-token&after=cursor2"
		w.Write([]byte(`{"data":[{"spend":"5.00","date_start":"2024-03-01"}],"paging":{"next":"` + next + `"}}`))
	})
	serverURL = server.URL

	dr := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	rows, err := client.GetAccountDailySpend(context.Background(), "act_1", dr)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-01", rows[0].DateStart)
	assert.Equal(t, "2024-03-02", rows[1].DateStart)
	assert.Equal(t, 2, calls)
}

func TestGetAccountDailySpend_PageErrorFailsTheCall(t *testing.T) {
	var serverURL string

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") != "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Invalid cursor","code":100}}`))
			return
		}
		w.Write([]byte(`{"data":[{"spend":"5.00","date_start":"2024-03-01"}],"paging":{"next":"` + serverURL + `/v19.0/act_1/insights?after=x"}}`))
	})
	serverURL = server.URL

	rows, err := client.GetAccountDailySpend(context.Background(), "act_1", domain.DateRange{})
	require.Error(t, err)
	assert.Nil(t, rows)

	var appErr *ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 100, appErr.Code)
}

func TestGetCampaignsByAccountID_FollowsPaging(t *testing.T) {
	var serverURL string

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "p2" {
			w.Write([]byte(`{"data":[{"id":"2","name":"Camp 2"}]}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"1","name":"Camp 1"}],"paging":{"next":"` + serverURL + `/v19.0/act_1/campaigns?after=p2"}}`))
	})
	serverURL = server.URL

	campaigns, err := client.GetCampaignsByAccountID(context.Background(), "act_1", nil, 1)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "1", campaigns[0].ID)
	assert.Equal(t, "2", campaigns[1].ID)
}

func TestGetCampaignsByAccountID_EndlessPagingIsAnError(t *testing.T) {
	var serverURL string
	var calls int

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"data":[{"id":"1"}],"paging":{"next":"` + serverURL + `/v19.0/act_1/campaigns?after=again"}}`))
	})
	serverURL = server.URL

	_, err := client.GetCampaignsByAccountID(context.Background(), "act_1", nil, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyPages))
	assert.Equal(t, maxPages, calls)
}

func TestTimeRange(t *testing.T) {
	dr := domain.DateRange{
		Start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, `{"since":"2024-01-31","until":"2024-02-01"}`, timeRange(dr))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "campaigns", endpointLabel("https://graph.facebook.com/v19.0/act_1/campaigns?access_token=x"))
	assert.Equal(t, "ad_account", endpointLabel("https://graph.facebook.com/v19.0/act_1?fields=id"))
	assert.Equal(t, "adcreatives", endpointLabel("https://graph.facebook.com/v19.0/55/adcreatives"))
	assert.Equal(t, "other", endpointLabel("https://graph.facebook.com/v19.0/me"))
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "act_123", NormalizeAccountID("123"))
	assert.Equal(t, "act_123", NormalizeAccountID("act_123"))
}
