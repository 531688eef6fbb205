package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetLatestSnapshot retorna o último snapshot salvo pelo agendador
func GetLatestSnapshot(repo repository.ReportSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := repo.GetLatest(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar último snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar último snapshot", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
