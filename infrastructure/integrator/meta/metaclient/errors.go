package metaclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

var ErrInvalidBody = errors.New("response body is not valid JSON")

// TransportError cobre falhas de rede, timeout e corpo ilegível
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("meta transport error (%s, status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("meta transport error (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError é um erro devolvido pela própria Graph API,
// inclusive dentro de respostas 200
type ApplicationError struct {
	Message    string
	Type       string
	Code       int
	Subcode    int
	FBTraceID  string
	StatusCode int
}

func newApplicationError(details metadomain.ErrorDetails, status int) *ApplicationError {
	return &ApplicationError{
		Message:    details.Message,
		Type:       details.Type,
		Code:       details.Code,
		Subcode:    details.ErrorSubcode,
		FBTraceID:  details.FBTraceID,
		StatusCode: status,
	}
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("meta api error (code %d, subcode %d, status %d): %s", e.Code, e.Subcode, e.StatusCode, e.Message)
}

// IsThrottled indica limite de uso atingido (HTTP 429 ou códigos de rate limit)
func (e *ApplicationError) IsThrottled() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	details := metadomain.ErrorDetails{Code: e.Code}
	return details.IsRateLimited()
}

func (e *ApplicationError) IsTokenExpired() bool {
	details := metadomain.ErrorDetails{Code: e.Code, Type: e.Type, ErrorSubcode: e.Subcode}
	return details.IsTokenExpired()
}

// IsThrottled verifica se err (ou algum erro encapsulado) sinaliza throttling
func IsThrottled(err error) bool {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.IsThrottled()
	}
	return false
}

// Outcome classifica o erro para métricas e logs
func Outcome(err error) string {
	if err == nil {
		return "success"
	}

	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		if appErr.IsThrottled() {
			return "throttled"
		}
		return "application_error"
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return "transport_error"
	}

	return "error"
}
