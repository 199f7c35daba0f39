package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Usuario stores registered staff in the `usuarios` collection.
// Password holds the bcrypt hash, never the plaintext. Email uniqueness is a
// business rule checked before insert, not a storage-level constraint.
type Usuario struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nombre   string             `bson:"nombre"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}
