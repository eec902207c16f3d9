package reporting

import "fmt"

// ConfigurationError indica configuração obrigatória ausente; nenhuma chamada remota é feita
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing server configuration: %s", e.Key)
}

var (
	ErrMissingAccessToken = &ConfigurationError{Key: "FB_ACCESS_TOKEN"}
	ErrMissingAccountID   = &ConfigurationError{Key: "AD_ACCOUNT_ID"}
)

// ValidationError indica parâmetro de data inválido.
// Param é "since", "until" ou "range" para verificações entre os dois.
type ValidationError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// FatalError aborta o relatório: a listagem de campanhas falhou
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
