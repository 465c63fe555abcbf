package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Submission is a contact-form entry. Subject is optional and stored as
// null when absent.
type Submission struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject *string            `bson:"subject" json:"subject"`
	Reason  string             `bson:"reason" json:"reason"`
}
