package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MemorySource guarda documentos já serializados em bson, na ordem de inserção.
// A comparação dos filtros é byte a byte: serve para ids e strings, não
// compara números de tipos diferentes (int32 x double) como o Mongo faria.
type MemorySource struct {
	mu    sync.RWMutex
	colls map[string][]bson.Raw
}

func NewMemorySource() *MemorySource {
	return &MemorySource{colls: make(map[string][]bson.Raw)}
}

func (s *MemorySource) Insert(collection string, docs ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", collection, err)
		}
		s.colls[collection] = append(s.colls[collection], raw)
	}
	return nil
}

func (s *MemorySource) Find(ctx context.Context, collection string, filter Filter) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conds, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []bson.Raw{}
	for _, doc := range s.colls[collection] {
		if matchAll(doc, conds) {
			out = append(out, doc)
		}
	}
	return out, nil
}

type rawValue struct {
	t    bsontype.Type
	data []byte
}

type fieldCond struct {
	field string
	anyOf []rawValue
}

func compileFilter(f Filter) ([]fieldCond, error) {
	conds := make([]fieldCond, 0, len(f))
	for field, v := range f {
		values := []any{v}
		if m, ok := v.(bson.M); ok {
			in, ok := m["$in"].([]any)
			if !ok || len(m) != 1 {
				return nil, fmt.Errorf("unsupported filter on %q", field)
			}
			values = in
		}
		c := fieldCond{field: field}
		for _, val := range values {
			t, data, err := bson.MarshalValue(val)
			if err != nil {
				return nil, fmt.Errorf("filter %q: %w", field, err)
			}
			c.anyOf = append(c.anyOf, rawValue{t: t, data: data})
		}
		conds = append(conds, c)
	}
	return conds, nil
}

func matchAll(doc bson.Raw, conds []fieldCond) bool {
	for _, c := range conds {
		if !matchField(doc.Lookup(c.field), c.anyOf) {
			return false
		}
	}
	return true
}

func matchField(v bson.RawValue, anyOf []rawValue) bool {
	if v.Type == 0 {
		// campo ausente se comporta como null
		v = bson.RawValue{Type: bson.TypeNull}
	}
	if v.Type == bson.TypeArray {
		elems, err := v.Array().Values()
		if err == nil {
			for _, e := range elems {
				if equalsAny(e, anyOf) {
					return true
				}
			}
		}
	}
	return equalsAny(v, anyOf)
}

func equalsAny(v bson.RawValue, anyOf []rawValue) bool {
	for _, want := range anyOf {
		if v.Type == want.t && bytes.Equal(v.Value, want.data) {
			return true
		}
	}
	return false
}
