package tracking

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Tracker recebe o webhook da página e registra a origem das conversas
type Tracker interface {
	// VerifySubscription valida o handshake hub.* e retorna o challenge a ser ecoado
	VerifySubscription(mode, token, challenge string) (string, error)
	// VerifySignature confere o cabeçalho X-Hub-Signature-256 quando há app secret configurado
	VerifySignature(body []byte, header string) error
	// HandleEvent processa o corpo do POST e retorna quantos eventos de mensagem foram lidos
	HandleEvent(ctx context.Context, body []byte) (int, error)
	// GetCustomer busca o registro de origem de um cliente pelo PSID
	GetCustomer(ctx context.Context, psid string) (*domain.CustomerTracking, error)
}
