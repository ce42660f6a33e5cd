package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nombre    string             `bson:"nombre"`
	SKU       string             `bson:"sku"`
	Categoria string             `bson:"categoria"`
	Stock     int                `bson:"stock"`
	Precio    decimal.Decimal    `bson:"precio"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *productDocument) toEntity() *entity.Product {
	return &entity.Product{
		ID:        d.ID.Hex(),
		Nombre:    d.Nombre,
		SKU:       d.SKU,
		Categoria: d.Categoria,
		Stock:     d.Stock,
		Precio:    d.Precio,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// patchToSet traduce los campos presentes del patch a un documento $set.
func patchToSet(patch entity.ProductPatch, updatedAt time.Time) bson.M {
	set := bson.M{"updatedAt": updatedAt}
	if patch.Nombre != nil {
		set["nombre"] = *patch.Nombre
	}
	if patch.SKU != nil {
		set["sku"] = *patch.SKU
	}
	if patch.Categoria != nil {
		set["categoria"] = *patch.Categoria
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Precio != nil {
		set["precio"] = *patch.Precio
	}
	return set
}

// ProductRepo implementación del puerto ProductRepository sobre la colección productos.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductsCollection)}
}

// Create inserta el producto; el índice único de sku rechaza duplicados.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc := productDocument{
		ID:        primitive.NewObjectID(),
		Nombre:    product.Nombre,
		SKU:       product.SKU,
		Categoria: product.Categoria,
		Stock:     product.Stock,
		Precio:    product.Precio,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, err.Error())
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = doc.ID.Hex()
	return nil
}

// List devuelve la colección completa.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// GetByID obtiene un producto por su ObjectID hex.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc productDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.toEntity(), nil
}

// Update aplica $set con los campos presentes y devuelve el documento resultante.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch, updatedAt time.Time) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patchToSet(patch, updatedAt)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicate, err.Error())
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return doc.toEntity(), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}
