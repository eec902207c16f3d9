package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// InsightMetrics guarda os contadores brutos de um registro de insights.
// CTR, CPC e CPM são sempre derivados dos contadores, nunca copiados da API.
type InsightMetrics struct {
	Spend                         decimal.Decimal
	Impressions                   int64
	Clicks                        int64
	LinkClicks                    int64
	Reach                         int64
	Purchases                     int64
	MessagingConversationsStarted int64
}

// AggregateTotals tem o mesmo formato de InsightMetrics, somado sobre toda a árvore
type AggregateTotals = InsightMetrics

// Add soma os contadores brutos
func (m InsightMetrics) Add(o InsightMetrics) InsightMetrics {
	return InsightMetrics{
		Spend:                         m.Spend.Add(o.Spend),
		Impressions:                   m.Impressions + o.Impressions,
		Clicks:                        m.Clicks + o.Clicks,
		LinkClicks:                    m.LinkClicks + o.LinkClicks,
		Reach:                         m.Reach + o.Reach,
		Purchases:                     m.Purchases + o.Purchases,
		MessagingConversationsStarted: m.MessagingConversationsStarted + o.MessagingConversationsStarted,
	}
}

// SumInsights soma uma lista de insights; nil conta como zero
func SumInsights(items ...*InsightMetrics) InsightMetrics {
	total := InsightMetrics{}
	for _, item := range items {
		if item == nil {
			continue
		}
		total = total.Add(*item)
	}
	return total
}

// CTR em percentual: clicks / impressions * 100
func (m InsightMetrics) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions) * 100
}

// CPC: spend / clicks
func (m InsightMetrics) CPC() float64 {
	if m.Clicks == 0 {
		return 0
	}
	return m.Spend.Div(decimal.NewFromInt(m.Clicks)).InexactFloat64()
}

// CPM: spend / impressions * 1000
func (m InsightMetrics) CPM() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return m.Spend.Mul(decimal.NewFromInt(1000)).Div(decimal.NewFromInt(m.Impressions)).InexactFloat64()
}

// MetricsView é a forma externa das métricas, com duas casas decimais
type MetricsView struct {
	Spend                         float64 `json:"spend"`
	Impressions                   int64   `json:"impressions"`
	Clicks                        int64   `json:"clicks"`
	LinkClicks                    int64   `json:"linkClicks"`
	Reach                         int64   `json:"reach"`
	Purchases                     int64   `json:"purchases"`
	MessagingConversationsStarted int64   `json:"messagingConversationsStarted"`
	CTR                           float64 `json:"ctr"`
	CPC                           float64 `json:"cpc"`
	CPM                           float64 `json:"cpm"`
}

// Rounded calcula os derivados e arredonda para exibição
func (m InsightMetrics) Rounded() MetricsView {
	return MetricsView{
		Spend:                         m.Spend.Round(2).InexactFloat64(),
		Impressions:                   m.Impressions,
		Clicks:                        m.Clicks,
		LinkClicks:                    m.LinkClicks,
		Reach:                         m.Reach,
		Purchases:                     m.Purchases,
		MessagingConversationsStarted: m.MessagingConversationsStarted,
		CTR:                           utils.RoundWithTwoDecimalPlace(m.CTR()),
		CPC:                           utils.RoundWithTwoDecimalPlace(m.CPC()),
		CPM:                           utils.RoundWithTwoDecimalPlace(m.CPM()),
	}
}
