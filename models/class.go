package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClassStatus is the moderation state of a class listing.
//
// There is no enforced state machine: approve and deny overwrite each other
// in any order.
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approve"
	ClassDenied   ClassStatus = "deny"
)

// Instructor is the embedded reference to the user who created a class.
type Instructor struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

// Class is a course listing offered on the marketplace.
type Class struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Instructor     Instructor  `bson:"instructor" json:"instructor"`
	Title          string      `bson:"title" json:"title" validate:"required"`
	Image          string      `bson:"image,omitempty" json:"image,omitempty"`
	Price          float64     `bson:"price" json:"price"`
	AvailableSeats int         `bson:"availableSeats" json:"availableSeats"`
	Description    string      `bson:"description,omitempty" json:"description,omitempty"`
	Status         ClassStatus `bson:"status,omitempty" json:"status,omitempty"`
	Feedback       string      `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// ClassFilter narrows a class listing. Zero fields do not filter.
type ClassFilter struct {
	InstructorEmail string
	Status          ClassStatus
}

// FeedbackRequest attaches admin feedback to a class.
type FeedbackRequest struct {
	ID       string `json:"id" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}
