package store

import "slices"

// Joined é um pai com os filhos casados; Children nunca é nil.
type Joined[P, C any] struct {
	Parent   P
	Children []C
}

// Pair é uma linha achatada de uma junção; Child é nil quando o pai não casou nada.
type Pair[P, C any] struct {
	Parent P
	Child  *C
}

// Key adapta uma chave escalar para LeftJoin.
func Key[P any, K comparable](fn func(P) K) func(P) []K {
	return func(p P) []K { return []K{fn(p)} }
}

// LeftJoin casa cada pai com os filhos cuja chave está entre as chaves do pai.
// Chaves repetidas no pai casam o filho uma vez só, filhos ficam na ordem
// da coleção e a chave zero nunca casa (referência ausente).
func LeftJoin[P, C any, K comparable](parents []P, children []C, parentKeys func(P) []K, childKey func(C) K) []Joined[P, C] {
	var zero K
	index := make(map[K][]int)
	for i, c := range children {
		k := childKey(c)
		if k == zero {
			continue
		}
		index[k] = append(index[k], i)
	}

	out := make([]Joined[P, C], 0, len(parents))
	for _, p := range parents {
		seen := make(map[K]struct{})
		var hits []int
		for _, k := range parentKeys(p) {
			if k == zero {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			hits = append(hits, index[k]...)
		}
		slices.Sort(hits)

		matched := make([]C, 0, len(hits))
		for _, i := range hits {
			matched = append(matched, children[i])
		}
		out = append(out, Joined[P, C]{Parent: p, Children: matched})
	}
	return out
}

// Unwind gera uma linha por filho e mantém o pai sem filhos com Child nil.
func Unwind[P, C any](joined []Joined[P, C]) []Pair[P, C] {
	out := make([]Pair[P, C], 0, len(joined))
	for _, j := range joined {
		if len(j.Children) == 0 {
			out = append(out, Pair[P, C]{Parent: j.Parent})
			continue
		}
		for i := range j.Children {
			out = append(out, Pair[P, C]{Parent: j.Parent, Child: &j.Children[i]})
		}
	}
	return out
}
