package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/statistics"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSalesReport retorna o relatório completo. Se o backend falhar, os
// detalhes do erro trazem um relatório placeholder zerado.
func GetSalesReport(service statistics.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.GetReport(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar relatório de vendas")

			if fetchErr, ok := asFetchError(err); ok {
				details := fetchErrorDetails(fetchErr)
				details["report"] = domain.NewEmptyReport(domain.ProvenancePlaceholder)
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados no backend", details)
				return
			}

			writeStatisticsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetTopSold(service statistics.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			writeStatisticsError(w, err)
			return
		}

		top, err := service.TopSold(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar produtos mais vendidos")
			writeStatisticsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, top)
	}
}

func GetTopRevenue(service statistics.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			writeStatisticsError(w, err)
			return
		}

		top, err := service.TopRevenue(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar produtos com maior receita")
			writeStatisticsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, top)
	}
}

func GetTopCanceled(service statistics.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			writeStatisticsError(w, err)
			return
		}

		top, err := service.TopCanceled(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar produtos mais cancelados")
			writeStatisticsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, top)
	}
}

// GetChart retorna a série de gráfico de uma visão (sales, revenue, canceled, status)
func GetChart(service statistics.StatisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := statistics.ParseChartView(httprouter.ParamsFromContext(r.Context()).ByName("view"))
		if err != nil {
			writeStatisticsError(w, err)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			writeStatisticsError(w, err)
			return
		}

		series, err := service.Chart(r.Context(), view, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("view", view).Error("Erro ao gerar gráfico")
			writeStatisticsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, series)
	}
}
