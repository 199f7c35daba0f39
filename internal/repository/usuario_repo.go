package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsmaGarcia115/tienda-xprin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UsuarioRepository wraps user records in the `usuarios` collection.
// Insert does NOT enforce email uniqueness — callers must check FindByEmail
// first (business rule, not a storage constraint).
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	Insert(ctx context.Context, u *model.Usuario) (string, error)
}

type usuarioRepo struct{ coll *mongo.Collection }

func NewUsuarioRepository(db *mongo.Database) UsuarioRepository {
	return &usuarioRepo{coll: db.Collection("usuarios")}
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	var u model.Usuario
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Insert(ctx context.Context, u *model.Usuario) (string, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("id generado inesperado: %T", res.InsertedID)
	}
	u.ID = oid
	return oid.Hex(), nil
}
