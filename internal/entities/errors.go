package entities

// ValidationError é erro de entrada do cliente (vira HTTP 400),
// sempre com mensagem apontando o campo que falhou.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
