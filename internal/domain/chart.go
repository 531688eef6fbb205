package domain

// ChartPoint é um par rótulo/valor pronto para o gráfico
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// Labels e Values facilitam o consumo por bibliotecas de gráfico no front
func (s ChartSeries) Labels() []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Label
	}
	return labels
}

func (s ChartSeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}
