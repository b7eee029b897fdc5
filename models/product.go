package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultUnit  = "1 kg"
	DefaultImage = "/placeholder.png"
)

type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SKU         string             `json:"sku" bson:"sku"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Subcategory string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	MRP         *float64           `json:"mrp,omitempty" bson:"mrp,omitempty"`
	Stock       int                `json:"stock" bson:"stock"`
	Unit        string             `json:"unit" bson:"unit"`
	Images      []string           `json:"images" bson:"images"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput is the create / bulk-import payload.
type ProductInput struct {
	SKU         string   `json:"sku" validate:"required,min=1"`
	Name        string   `json:"name" validate:"required,min=1"`
	Category    string   `json:"category" validate:"required,min=1"`
	Subcategory string   `json:"subcategory,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	MRP         *float64 `json:"mrp,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Unit        string   `json:"unit,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ToProduct applies defaults and stamps both timestamps with now.
func (in ProductInput) ToProduct(now time.Time) *Product {
	p := &Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Description: in.Description,
		MRP:         in.MRP,
		Unit:        in.Unit,
		Images:      in.Images,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if p.Unit == "" {
		p.Unit = DefaultUnit
	}
	if len(p.Images) == 0 {
		p.Images = []string{DefaultImage}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

// ProductUpdate carries the fields a PUT may change; nil means untouched.
type ProductUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,min=1"`
	Subcategory *string   `json:"subcategory,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	MRP         *float64  `json:"mrp,omitempty" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Unit        *string   `json:"unit,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// Fields returns the bson field set for a $set, keyed by stored field name.
func (u ProductUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Subcategory != nil {
		set["subcategory"] = *u.Subcategory
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.MRP != nil {
		set["mrp"] = *u.MRP
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.Unit != nil {
		set["unit"] = *u.Unit
	}
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}
	return set
}

// ProductQuery is the parsed catalogue listing request.
type ProductQuery struct {
	Limit       int
	Page        int
	Category    string
	Subcategory string
	Search      string
}

type ProductListResponse struct {
	OK       bool      `json:"ok"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}
