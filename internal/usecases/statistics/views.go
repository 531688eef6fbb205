package statistics

// DefaultLimit é a quantidade padrão de itens nos rankings
const DefaultLimit = 5

// Top retorna os n primeiros itens de uma visão já ordenada.
// n <= 0 resulta em lista vazia; n maior que a visão retorna todos.
func Top[T any](view []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(view) {
		n = len(view)
	}

	top := make([]T, n)
	copy(top, view[:n])
	return top
}
