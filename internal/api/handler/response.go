package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxLimit = 1000

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// parseLimit lê o parâmetro limit. Ausente usa o padrão de 5 itens.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return statistics.DefaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 || limit > maxLimit {
		return 0, fmt.Errorf("%w: %q", statistics.ErrInvalidLimit, raw)
	}

	return limit, nil
}

// asFetchError identifica falhas de leitura no backend
func asFetchError(err error) (*backenddomain.FetchError, bool) {
	var fetchErr *backenddomain.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

func fetchErrorDetails(fetchErr *backenddomain.FetchError) map[string]any {
	details := map[string]any{
		"resource": fetchErr.Resource,
	}
	if fetchErr.StatusCode != 0 {
		details["upstream_status"] = fetchErr.StatusCode
	}
	return details
}

func writeStatisticsError(w http.ResponseWriter, err error) {
	if fetchErr, ok := asFetchError(err); ok {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados no backend", fetchErrorDetails(fetchErr))
		return
	}

	switch {
	case errors.Is(err, statistics.ErrInvalidChartView):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, statistics.ErrInvalidLimit):
		apiErrors.WriteError(w, apiErrors.ErrInvalidLimit, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar estatísticas de vendas", nil)
	}
}
