package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a class placed into a user's shopping cart.
// Email identifies the owner of the cart.
type CartItem struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Email      string     `bson:"email" json:"email" validate:"required,email"`
	ClassID    string     `bson:"classId" json:"classId" validate:"required"`
	Title      string     `bson:"title,omitempty" json:"title,omitempty"`
	Image      string     `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64    `bson:"price" json:"price"`
	Instructor Instructor `bson:"instructor,omitempty" json:"instructor,omitempty" validate:"-"`
}
