package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/office-admin/internal/models"
)

var (
	ErrNotFound  = errors.New("no record found")
	ErrDuplicate = errors.New("duplicate key")
)

// entity é satisfeito por *T para cada model com _id tipado.
type entity[T any] interface {
	*T
	EntityID() models.ID[T]
	SetEntityID(models.ID[T])
}

// Collection é o CRUD comum das seis coleções. Não valida campos nem
// propaga exclusões para as coleções que referenciam o documento.
type Collection[T any, PT entity[T]] struct {
	coll *mongo.Collection
}

func newCollection[T any, PT entity[T]](db *mongo.Database, name string) *Collection[T, PT] {
	return &Collection[T, PT]{coll: db.Collection(name)}
}

func (r *Collection[T, PT]) Name() string { return r.coll.Name() }

// Create gera o _id quando ausente e devolve o id gravado.
func (r *Collection[T, PT]) Create(ctx context.Context, doc PT) (models.ID[T], error) {
	if doc.EntityID().IsZero() {
		doc.SetEntityID(models.NewID[T]())
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ID[T]{}, fmt.Errorf("%s: %w", r.Name(), ErrDuplicate)
		}
		return models.ID[T]{}, err
	}
	return doc.EntityID(), nil
}

func (r *Collection[T, PT]) GetByID(ctx context.Context, id models.ID[T]) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindOne busca o primeiro documento que casa com filter.
func (r *Collection[T, PT]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Collection[T, PT]) GetAll(ctx context.Context, limit int64, skip int64) ([]T, error) {
	opts := options.Find().SetSkip(skip).SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc)
	}
	return list, cur.Err()
}

// Update aplica $set com os campos informados e devolve o documento já atualizado.
func (r *Collection[T, PT]) Update(ctx context.Context, id models.ID[T], fields bson.M) (*T, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	delete(fields, "_id")

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", r.Name(), ErrDuplicate)
		}
		return nil, err
	}
	return &doc, nil
}

// Replace troca o documento inteiro preservando o _id.
func (r *Collection[T, PT]) Replace(ctx context.Context, id models.ID[T], doc PT) error {
	doc.SetEntityID(id)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", r.Name(), ErrDuplicate)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Collection[T, PT]) Delete(ctx context.Context, id models.ID[T]) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
