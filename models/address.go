package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddressType string

const (
	AddressTypeHome  AddressType = "Home"
	AddressTypeWork  AddressType = "Work"
	AddressTypeOther AddressType = "Other"
)

type Address struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID        string             `json:"userId" bson:"userId"`
	FullName      string             `json:"fullName" bson:"fullName"`
	PhoneNumber   string             `json:"phoneNumber" bson:"phoneNumber"`
	StreetAddress string             `json:"streetAddress" bson:"streetAddress"`
	City          string             `json:"city" bson:"city"`
	State         string             `json:"state" bson:"state"`
	ZipCode       string             `json:"zipCode" bson:"zipCode"`
	Country       string             `json:"country" bson:"country"`
	IsDefault     bool               `json:"isDefault" bson:"isDefault"`
	AddressType   AddressType        `json:"addressType" bson:"addressType"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AddressInput struct {
	FullName      string      `json:"fullName" validate:"required"`
	PhoneNumber   string      `json:"phoneNumber" validate:"required"`
	StreetAddress string      `json:"streetAddress" validate:"required"`
	City          string      `json:"city" validate:"required"`
	State         string      `json:"state" validate:"required"`
	ZipCode       string      `json:"zipCode" validate:"required"`
	Country       string      `json:"country" validate:"required"`
	IsDefault     bool        `json:"isDefault"`
	AddressType   AddressType `json:"addressType" validate:"omitempty,oneof=Home Work Other"`
}

// Apply copies the input onto a, defaulting the address type to Home.
func (in AddressInput) Apply(a *Address) {
	a.FullName = in.FullName
	a.PhoneNumber = in.PhoneNumber
	a.StreetAddress = in.StreetAddress
	a.City = in.City
	a.State = in.State
	a.ZipCode = in.ZipCode
	a.Country = in.Country
	a.IsDefault = in.IsDefault
	a.AddressType = in.AddressType
	if a.AddressType == "" {
		a.AddressType = AddressTypeHome
	}
}
