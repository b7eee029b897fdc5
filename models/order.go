package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

// IsTerminal reports whether s is a final state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderDoc mirrors what is stored in the orders collection. Orders are
// written by more than one producer, so every field is optional and item
// fields exist under legacy names too. A field holding the wrong BSON type
// decodes as absent.
type OrderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Status    *string            `bson:"status,omitempty"`
	Total     *float64           `bson:"total,omitempty"`
	CreatedAt bson.RawValue      `bson:"createdAt,omitempty"`
	Items     []OrderItemDoc     `bson:"items,omitempty"`
}

type OrderItemDoc struct {
	SKU       *string  `bson:"sku,omitempty"`
	ProductID *string  `bson:"productId,omitempty"`
	Name      *string  `bson:"name,omitempty"`
	Qty       *float64 `bson:"qty,omitempty"`
	Quantity  *float64 `bson:"quantity,omitempty"`
	Price     *float64 `bson:"price,omitempty"`
}

type rawOrderDoc struct {
	ID        bson.RawValue `bson:"_id"`
	UserID    bson.RawValue `bson:"userId"`
	Status    bson.RawValue `bson:"status"`
	Total     bson.RawValue `bson:"total"`
	CreatedAt bson.RawValue `bson:"createdAt"`
	Items     bson.RawValue `bson:"items"`
}

func (d *OrderDoc) UnmarshalBSON(data []byte) error {
	var raw rawOrderDoc
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = OrderDoc{CreatedAt: raw.CreatedAt}
	if oid, ok := raw.ID.ObjectIDOK(); ok {
		d.ID = oid
	}
	d.UserID, _ = raw.UserID.StringValueOK()
	d.Status = stringOf(raw.Status)
	d.Total = numberOf(raw.Total)

	arr, ok := raw.Items.ArrayOK()
	if !ok {
		return nil
	}
	values, err := arr.Values()
	if err != nil {
		return err
	}
	d.Items = make([]OrderItemDoc, 0, len(values))
	for _, v := range values {
		var item OrderItemDoc
		if doc, ok := v.DocumentOK(); ok {
			if err := bson.Unmarshal(doc, &item); err != nil {
				return err
			}
		}
		d.Items = append(d.Items, item)
	}
	return nil
}

type rawOrderItemDoc struct {
	SKU       bson.RawValue `bson:"sku"`
	ProductID bson.RawValue `bson:"productId"`
	Name      bson.RawValue `bson:"name"`
	Qty       bson.RawValue `bson:"qty"`
	Quantity  bson.RawValue `bson:"quantity"`
	Price     bson.RawValue `bson:"price"`
}

func (it *OrderItemDoc) UnmarshalBSON(data []byte) error {
	var raw rawOrderItemDoc
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = OrderItemDoc{
		SKU:       stringOf(raw.SKU),
		ProductID: stringOf(raw.ProductID),
		Name:      stringOf(raw.Name),
		Qty:       numberOf(raw.Qty),
		Quantity:  numberOf(raw.Quantity),
		Price:     numberOf(raw.Price),
	}
	return nil
}

func stringOf(v bson.RawValue) *string {
	if s, ok := v.StringValueOK(); ok {
		return &s
	}
	return nil
}

// numberOf accepts the BSON numeric types a JavaScript writer produces.
func numberOf(v bson.RawValue) *float64 {
	var f float64
	switch v.Type {
	case bsontype.Double:
		f = v.Double()
	case bsontype.Int32:
		f = float64(v.Int32())
	case bsontype.Int64:
		f = float64(v.Int64())
	default:
		return nil
	}
	return &f
}

// Order is the normalised shape returned by every order endpoint.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId,omitempty"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt string      `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price"`
}

// Normalize fills defaults for missing fields. now stands in for a missing
// or unreadable createdAt.
func (d OrderDoc) Normalize(now time.Time) Order {
	o := Order{
		ID:        d.ID.Hex(),
		Status:    string(OrderStatusPending),
		CreatedAt: normalizeTimestamp(d.CreatedAt, now),
		Items:     make([]OrderItem, 0, len(d.Items)),
	}
	if d.ID.IsZero() {
		o.ID = ""
	}
	if d.Status != nil {
		o.Status = *d.Status
	}
	if d.Total != nil {
		o.Total = *d.Total
	}
	for _, it := range d.Items {
		o.Items = append(o.Items, it.normalize())
	}
	return o
}

func (it OrderItemDoc) normalize() OrderItem {
	out := OrderItem{Name: "Item", Qty: 1}
	switch {
	case it.SKU != nil:
		out.SKU = *it.SKU
	case it.ProductID != nil:
		out.SKU = *it.ProductID
	}
	if it.Name != nil {
		out.Name = *it.Name
	}
	switch {
	case it.Qty != nil:
		out.Qty = *it.Qty
	case it.Quantity != nil:
		out.Qty = *it.Quantity
	}
	if it.Price != nil {
		out.Price = *it.Price
	}
	return out
}

func normalizeTimestamp(v bson.RawValue, now time.Time) string {
	switch v.Type {
	case bsontype.String:
		return v.StringValue()
	case bsontype.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	default:
		return now.UTC().Format(time.RFC3339Nano)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
