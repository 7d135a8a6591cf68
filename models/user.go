package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level of a marketplace user.
// A freshly signed-in user has no role until an admin promotes them.
type Role string

const (
	RoleUnset      Role = ""
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User is a marketplace account. Email is the natural key: users are created
// on first sign-in by an upsert keyed on it.
type User struct {
	// ID is assigned by the document store on insert.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Email    string `bson:"email" json:"email"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`

	// Role is only changed by the promotion operations.
	Role Role `bson:"role,omitempty" json:"role,omitempty"`
}

// UserFilter narrows a user listing. Zero fields do not filter.
type UserFilter struct {
	Role Role
}

// AdminCheck is the body returned by the admin identity check.
type AdminCheck struct {
	Admin bool `json:"admin"`
}

// InstructorCheck is the body returned by the instructor identity check.
type InstructorCheck struct {
	Instructor bool `json:"instructor"`
}
