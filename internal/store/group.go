package store

// Group reúne as linhas de uma mesma chave na ordem em que apareceram.
type Group[K comparable, T any] struct {
	Key  K
	Rows []T
}

// Groups particiona as linhas mantendo os grupos na ordem da primeira aparição.
func Groups[T any, K comparable](rows []T, key func(T) K) []Group[K, T] {
	pos := make(map[K]int)
	var out []Group[K, T]
	for _, r := range rows {
		k := key(r)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, Group[K, T]{Key: k})
		}
		out[i].Rows = append(out[i].Rows, r)
	}
	return out
}

// GroupBy agrupa e aplica reduce a cada grupo; reduce combina os
// acumuladores First, Sum e Count.
func GroupBy[T any, K comparable, R any](rows []T, key func(T) K, reduce func(K, []T) R) []R {
	groups := Groups(rows, key)
	out := make([]R, 0, len(groups))
	for _, g := range groups {
		out = append(out, reduce(g.Key, g.Rows))
	}
	return out
}

// First devolve o campo da primeira linha, ou o zero de V se não houver linhas.
func First[T, V any](rows []T, field func(T) V) V {
	var v V
	if len(rows) > 0 {
		v = field(rows[0])
	}
	return v
}

func Sum[T any](rows []T, field func(T) float64) float64 {
	var total float64
	for _, r := range rows {
		total += field(r)
	}
	return total
}

func Count[T any](rows []T) int { return len(rows) }
