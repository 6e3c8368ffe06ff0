// Package store é a única fronteira com a persistência usada pelos
// relatórios: busca de documentos por nome de coleção e as primitivas de
// junção e agrupamento aplicadas em memória sobre o resultado.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Source devolve os documentos de uma coleção na ordem em que o banco os entrega.
type Source interface {
	Find(ctx context.Context, collection string, filter Filter) ([]bson.Raw, error)
}

// Filter aceita igualdade por campo de primeiro nível e o operador $in (via In).
// Um campo array casa se algum elemento casar, como no Mongo.
type Filter map[string]any

// In monta a condição {"$in": [...]}; nunca gera array nulo.
func In[V any](values ...V) bson.M {
	arr := make([]any, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}
	return bson.M{"$in": arr}
}

func (f Filter) toBSON() bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

// FindAll busca e decodifica os documentos da coleção em T.
func FindAll[T any](ctx context.Context, src Source, collection string, filter Filter) ([]T, error) {
	raws, err := src.Find(ctx, collection, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := bson.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}
