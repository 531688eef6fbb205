package backenddomain

import (
	"fmt"
	"net/http"
)

// FetchError representa uma falha ao ler um recurso do backend
// (rede, autenticação, status inesperado ou resposta inválida)
type FetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("erro ao buscar %s no backend (status %d): %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("erro ao buscar %s no backend: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound indica se o backend respondeu 404
func (e *FetchError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
