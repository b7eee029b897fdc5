package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditAction string

const (
	AuditCreateAddress AuditAction = "CREATE_ADDRESS"
	AuditUpdateAddress AuditAction = "UPDATE_ADDRESS"
	AuditDeleteAddress AuditAction = "DELETE_ADDRESS"
)

// AuditLog entries are append-only.
type AuditLog struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId"`
	Action    AuditAction        `json:"action" bson:"action"`
	AddressID primitive.ObjectID `json:"addressId" bson:"addressId"`
	Before    *Address           `json:"before,omitempty" bson:"before,omitempty"`
	After     *Address           `json:"after,omitempty" bson:"after,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
