package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	// 190 = token inválido/expirado; subcódigos 460, 463, 467 também indicam problema no token
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsRateLimited verifica os códigos de limite de uso da Graph API
// (4 app, 17 usuário, 32 página, 613 chamadas, 80000-80014 business use case)
func (e *ErrorDetails) IsRateLimited() bool {
	switch e.Code {
	case 4, 17, 32, 613:
		return true
	}
	return e.Code >= 80000 && e.Code <= 80014
}
