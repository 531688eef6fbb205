package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/categorizing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetClientProfile retorna o resumo de compras e categorias de um cliente
func GetClientProfile(service categorizing.ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dni := httprouter.ParamsFromContext(r.Context()).ByName("dni")

		profile, err := service.BuildClientProfile(r.Context(), dni)
		if err != nil {
			logger := log.ForContext(r.Context()).WithError(err).WithField("dni", dni)

			switch {
			case errors.Is(err, categorizing.ErrInvalidDNI):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "DNI deve ter 8 dígitos", nil)
			case errors.Is(err, categorizing.ErrClientNotFound):
				apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
			default:
				if fetchErr, ok := asFetchError(err); ok {
					logger.Error("Erro ao buscar cliente no backend")
					apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar cliente no backend", fetchErrorDetails(fetchErr))
					return
				}
				logger.Error("Erro ao montar perfil do cliente")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar perfil do cliente", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
