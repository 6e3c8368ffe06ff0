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

const codeIndexOptionsConflict = 85

// Índices nas chaves estrangeiras usadas pelas junções dos relatórios e
// nos códigos naturais usados pelo seed.
var collectionIndexes = map[string][]mongo.IndexModel{
	models.CollAccessLogs: {
		{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "entry_time", Value: 1}}, Options: options.Index().SetName("idx_employee_entry")},
	},
	models.CollCompanyServiceUsages: {
		{Keys: bson.D{{Key: "company_id", Value: 1}}, Options: options.Index().SetName("idx_company_id")},
		{Keys: bson.D{{Key: "service_id", Value: 1}}, Options: options.Index().SetName("idx_service_id")},
	},
	models.CollCompanyEmployees: {
		{Keys: bson.D{{Key: "company_id", Value: 1}}, Options: options.Index().SetName("idx_company_id")},
	},
	// employee_code não é único: o menu insere o mesmo funcionário de exemplo a cada "add"
	models.CollBuildingEmployees: {
		{Keys: bson.D{{Key: "employee_code", Value: 1}}, Options: options.Index().SetName("idx_employee_code")},
	},
	models.CollBuildingServices: {
		{Keys: bson.D{{Key: "service_code", Value: 1}}, Options: options.Index().SetName("uniq_service_code").SetUnique(true)},
	},
	models.CollCompanies: {
		{Keys: bson.D{{Key: "tax_code", Value: 1}}, Options: options.Index().SetName("uniq_tax_code").SetUnique(true)},
	},
}

// EnsureIndexes cria os índices de todas as coleções. Se um índice já
// existir com outras opções, é dropado e recriado.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	var errs []error
	for coll, idx := range collectionIndexes {
		for _, model := range idx {
			if err := ensureIndex(ctx, db.Collection(coll), model); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", coll, err))
			}
		}
	}
	return errors.Join(errs...)
}

func ensureIndex(ctx context.Context, coll *mongo.Collection, model mongo.IndexModel) error {
	_, err := coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == codeIndexOptionsConflict {
		name := *model.Options.Name
		if _, dropErr := coll.Indexes().DropOne(ctx, name); dropErr != nil {
			return fmt.Errorf("drop index %s: %w", name, dropErr)
		}
		_, err = coll.Indexes().CreateOne(ctx, model)
	}
	return err
}
