// Package mongodb implementa los puertos de usuarios y productos sobre MongoDB
// (colecciones "users" y "productos").
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventario-tareas-api/pkg/config"
)

// Nombres de colección compartidos con los datos existentes.
const (
	UsersCollection    = "users"
	ProductsCollection = "productos"
)

// NewClient conecta con MongoDB, registra el codec de decimal y verifica con ping.
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(NewRegistry()).
		SetConnectTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices únicos de username y sku (idempotente).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}
	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, unique("username")); err != nil {
		return fmt.Errorf("índice users.username: %w", err)
	}
	if _, err := db.Collection(ProductsCollection).Indexes().CreateOne(ctx, unique("sku")); err != nil {
		return fmt.Errorf("índice productos.sku: %w", err)
	}
	return nil
}
