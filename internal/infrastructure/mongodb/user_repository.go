package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Username string             `bson:"username"`
	Password string             `bson:"password,omitempty"`
	Role     string             `bson:"role"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Username:     d.Username,
		PasswordHash: d.Password,
		Role:         d.Role,
	}
}

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(UsersCollection)}
}

// Create inserta el usuario y asigna su ObjectID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Name:     user.Name,
		Username: user.Username,
		Password: user.PasswordHash,
		Role:     user.Role,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

// FindByUsername obtiene un usuario por username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toEntity(), nil
}

// List devuelve todos los usuarios sin el campo password.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	list := make([]*entity.User, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// Count número de documentos en users.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
