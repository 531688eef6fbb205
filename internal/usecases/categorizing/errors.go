package categorizing

import "errors"

var (
	ErrClientNotFound = errors.New("cliente não encontrado")
	ErrInvalidDNI     = errors.New("DNI inválido")
)
