package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// ID é um ObjectID marcado com a entidade a que pertence, para que uma
// referência de AccessLog não seja usada no lugar de uma de Company.
// No banco é gravado como ObjectID comum; o valor zero vira null.
type ID[E any] primitive.ObjectID

type (
	EmployeeID        = ID[BuildingEmployee]
	AccessLogID       = ID[AccessLog]
	ServiceID         = ID[BuildingService]
	CompanyID         = ID[Company]
	CompanyEmployeeID = ID[CompanyEmployee]
	UsageID           = ID[CompanyServiceUsage]
)

func NewID[E any]() ID[E] {
	return ID[E](primitive.NewObjectID())
}

func ParseID[E any](s string) (ID[E], error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return ID[E]{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID[E](oid), nil
}

func (id ID[E]) ObjectID() primitive.ObjectID { return primitive.ObjectID(id) }
func (id ID[E]) Hex() string                  { return primitive.ObjectID(id).Hex() }
func (id ID[E]) String() string               { return id.Hex() }

// IsZero também é usado pelo codec bson para o omitempty.
func (id ID[E]) IsZero() bool { return primitive.ObjectID(id).IsZero() }

func (id ID[E]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if id.IsZero() {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(primitive.ObjectID(id))
}

func (id *ID[E]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bson.TypeNull || t == bson.TypeUndefined {
		*id = ID[E]{}
		return nil
	}
	var oid primitive.ObjectID
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&oid); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID[E](oid)
	return nil
}

func (id ID[E]) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(id.Hex())
}

func (id *ID[E]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ID[E]{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, b)
	}
	parsed, err := ParseID[E](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
