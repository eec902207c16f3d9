package metadomain

import (
	"strconv"
	"strings"
)

// Campos pedidos em todo endpoint de insights
const InsightFields = "spend,impressions,clicks,inline_link_clicks,reach,actions,date_start,date_stop"

// A Graph API devolve todos os contadores como string
type Insight struct {
	AccountID        string   `json:"account_id"`
	CampaignID       string   `json:"campaign_id"`
	AdID             string   `json:"ad_id"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
	Spend            string   `json:"spend"`
	Impressions      string   `json:"impressions"`
	Clicks           string   `json:"clicks"`
	InlineLinkClicks string   `json:"inline_link_clicks"`
	Reach            string   `json:"reach"`
	Actions          []Action `json:"actions"`
}

type InsightList struct {
	Data   []Insight `json:"data"`
	Paging Paging    `json:"paging"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Compras: vale o primeiro tipo presente nesta ordem
var PurchaseActionTypes = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
	"omni_purchase",
}

const MessagingConversationStartedActionType = "onsite_conversion.messaging_conversation_started_7d"

// ActionCounters são os contadores nomeados extraídos da lista genérica de actions
type ActionCounters struct {
	Purchases                     int64
	MessagingConversationsStarted int64
	// Tipos cujo valor não pôde ser convertido
	Invalid []string
}

// DecodeActions percorre a lista de actions uma única vez
func DecodeActions(actions []Action) ActionCounters {
	counters := ActionCounters{}
	values := make(map[string]int64, len(actions))

	for _, action := range actions {
		if _, ok := values[action.ActionType]; ok {
			continue
		}
		value, err := parseActionValue(action.Value)
		if err != nil {
			counters.Invalid = append(counters.Invalid, action.ActionType)
			continue
		}
		values[action.ActionType] = value
	}

	for _, actionType := range PurchaseActionTypes {
		if v, ok := values[actionType]; ok {
			counters.Purchases = v
			break
		}
	}

	counters.MessagingConversationsStarted = values[MessagingConversationStartedActionType]

	return counters
}

// Valores de action podem vir como "12" ou "12.0"
func parseActionValue(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
