package statistics

import "errors"

var (
	ErrInvalidEstimationMode = errors.New("modo de estimativa inválido")
	ErrInvalidChartView      = errors.New("visão de gráfico inválida")
	ErrInvalidLimit          = errors.New("limite inválido")
)
