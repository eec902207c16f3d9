package domain

import "time"

const WebhookObjectPage = "page"

// WebhookPayload é o corpo enviado pela plataforma de mensagens no POST do webhook
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

type MessagingEvent struct {
	Sender    MessagingParty    `json:"sender"`
	Recipient MessagingParty    `json:"recipient"`
	Timestamp int64             `json:"timestamp"`
	Message   *MessagingMessage `json:"message,omitempty"`
	Referral  *Referral         `json:"referral,omitempty"`
	Postback  *Postback         `json:"postback,omitempty"`
}

type MessagingParty struct {
	ID string `json:"id"`
}

type MessagingMessage struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

// Referral identifica o anúncio (click-to-messenger) que originou a conversa
type Referral struct {
	Ref    string `json:"ref"`
	Source string `json:"source"`
	Type   string `json:"type"`
	AdID   string `json:"ad_id"`
}

type Postback struct {
	Title    string    `json:"title"`
	Payload  string    `json:"payload"`
	Referral *Referral `json:"referral,omitempty"`
}

// ReferralInfo retorna o referral da mensagem ou do postback
func (e MessagingEvent) ReferralInfo() *Referral {
	if e.Referral != nil {
		return e.Referral
	}
	if e.Postback != nil {
		return e.Postback.Referral
	}
	return nil
}

// WebhookEvent é um evento de mensagem armazenado
type WebhookEvent struct {
	ID          string
	PageID      string
	SenderPSID  string
	RecipientID string
	MessageID   string
	Text        string
	AdID        string
	OccurredAt  time.Time
	Payload     []byte
	ReceivedAt  time.Time
}

// CustomerTracking acompanha um cliente que iniciou conversa pela página
type CustomerTracking struct {
	ID               string    `json:"id"`
	UserPSID         string    `json:"user_psid"`
	PageID           string    `json:"page_id"`
	AdID             string    `json:"ad_id"`
	Ref              string    `json:"ref"`
	Source           string    `json:"source"`
	LastMessageText  string    `json:"last_message_text"`
	MessageCount     int64     `json:"message_count"`
	FirstInteraction time.Time `json:"first_interaction"`
	LastMessageAt    time.Time `json:"last_message_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
