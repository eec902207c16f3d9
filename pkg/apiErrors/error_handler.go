package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos internos de erro; só determinam o status HTTP
const (
	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrInvalidDateRange = "VAL_002" // Intervalo de datas inválido

	// Erros de acesso
	ErrForbidden = "ACC_001" // Verificação do webhook falhou
	ErrNotFound  = "ACC_002" // Recurso ou objeto não suportado

	// Erros do servidor
	ErrInternalServer       = "SRV_001" // Erro interno do servidor
	ErrMissingConfiguration = "SRV_002" // Configuração obrigatória ausente
	ErrExternalService      = "SRV_003" // Erro na Graph API
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrInvalidDateRange:     http.StatusBadRequest,
	ErrForbidden:            http.StatusForbidden,
	ErrNotFound:             http.StatusNotFound,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrMissingConfiguration: http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
}

// APIError é o corpo de toda resposta de falha
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP de um código; desconhecido vira 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Error:   message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("api: failed to encode error response")
	}
}

// FromError monta o corpo de erro a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{Error: "unknown error"}
	}

	return APIError{Error: err.Error()}
}
