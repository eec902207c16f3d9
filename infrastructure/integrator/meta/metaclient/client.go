package metaclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Call(ctx context.Context, rawURL string) ([]byte, error)
	GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	GetAccountDailySpend(ctx context.Context, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error)
	GetCampaignsByAccountID(ctx context.Context, accountID string, statuses []string, limit int) ([]metadomain.Campaign, error)
	GetCampaignInsights(ctx context.Context, campaignID string, dateRange domain.DateRange) (*metadomain.Insight, error)
	GetAdsByCampaignID(ctx context.Context, campaignID string, dateRange domain.DateRange, limit int) ([]metadomain.Ad, error)
	GetAdCreativesByAdID(ctx context.Context, adID string) ([]metadomain.AdCreative, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}

// Call faz um único GET, sem retry, e classifica o resultado.
// O corpo é sempre lido como JSON porque a Graph API devolve erros dentro de respostas 200.
func (c *MetaClient) Call(ctx context.Context, rawURL string) ([]byte, error) {
	endpoint := endpointLabel(rawURL)
	start := time.Now()

	body, err := c.call(ctx, rawURL)

	metrics.ObserveRemoteRequest(endpoint, Outcome(err), time.Since(start))

	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"endpoint": endpoint,
			"outcome":  Outcome(err),
			"error":    err.Error(),
		}).Warn("meta: request failed")
	}

	return body, err
}

func (c *MetaClient) call(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", StatusCode: resp.StatusCode, Err: err}
	}

	return classify(resp.StatusCode, body)
}

func classify(status int, body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return nil, &TransportError{Op: "decode", StatusCode: status, Err: ErrInvalidBody}
	}

	var envelope struct {
		Error jsoniter.RawMessage `json:"error"`
	}
	// Corpo que não é objeto (ex.: array) não tem envelope de erro
	_ = json.Unmarshal(body, &envelope)

	if raw := bytes.TrimSpace(envelope.Error); len(raw) > 0 && string(raw) != "null" {
		var details metadomain.ErrorDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, &ApplicationError{Message: string(raw), StatusCode: status}
		}
		return nil, newApplicationError(details, status)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &ApplicationError{Message: http.StatusText(status), StatusCode: status}
	}

	return body, nil
}

// get monta a URL, chama a API e decodifica o corpo em out
func (c *MetaClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	body, err := c.Call(ctx, c.buildURL(path, params))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Op: "decode " + endpointLabel(path), Err: err}
	}

	return nil
}

func (c *MetaClient) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	return c.Cfg.Meta.URL + "/" + strings.TrimLeft(path, "/") + "?" + params.Encode()
}

// NormalizeAccountID garante o prefixo act_ exigido pela Graph API
func NormalizeAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

var knownEndpoints = map[string]bool{
	"campaigns":   true,
	"insights":    true,
	"ads":         true,
	"adcreatives": true,
}

// endpointLabel reduz a URL a um rótulo de baixa cardinalidade para métricas
func endpointLabel(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	last := segments[len(segments)-1]

	if knownEndpoints[last] {
		return last
	}
	if strings.HasPrefix(last, "act_") {
		return "ad_account"
	}
	return "other"
}
