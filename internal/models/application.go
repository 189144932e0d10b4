package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus tracks the single Pending -> Accepted transition.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
)

// Application is an admission request submitted by a prospective parent.
// Login credentials are minted once, when the application is accepted.
type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildName     string             `bson:"childName" json:"childName"`
	DOB           time.Time          `bson:"dob" json:"dob"`
	Program       string             `bson:"program" json:"program"`
	ParentName    string             `bson:"parentName" json:"parentName"`
	Phone         string             `bson:"phone" json:"phone"`
	Email         string             `bson:"email" json:"email"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Documents     []string           `bson:"documents,omitempty" json:"documents,omitempty"`
	SubmittedAt   time.Time          `bson:"submittedAt" json:"submittedAt"`
	Status        ApplicationStatus  `bson:"status" json:"status"`
	LoginEmail    string             `bson:"loginEmail,omitempty" json:"loginEmail,omitempty"`
	LoginPassword string             `bson:"loginPassword,omitempty" json:"-"`
}
