package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/YeshwantRaoB/organizon-web/models"
	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"
	"github.com/YeshwantRaoB/organizon-web/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedOrders() (*memOrders, primitive.ObjectID, primitive.ObjectID) {
	pendingID := primitive.NewObjectID()
	doneID := primitive.NewObjectID()
	repo := &memOrders{docs: []models.OrderDoc{
		{ID: pendingID, UserID: "u1", Status: ptr("pending"), Total: ptr(240.0), Items: []models.OrderItemDoc{{SKU: ptr("RICE01-001"), Qty: ptr(2.0), Price: ptr(120.0)}}},
		{ID: doneID, UserID: "u2", Status: ptr("completed"), Total: ptr(60.0)},
	}}
	return repo, pendingID, doneID
}

func TestOrderService_ListForUser(t *testing.T) {
	repo, pendingID, _ := seedOrders()
	svc := services.NewOrderService(repo, services.OrderServiceConfig{}, awspkg.DisabledMetrics())

	orders, serr := svc.ListForUser(context.Background(), "u1")
	require.Nil(t, serr)
	require.Len(t, orders, 1)
	assert.Equal(t, pendingID.Hex(), orders[0].ID)
	assert.Empty(t, orders[0].UserID)
	assert.Equal(t, 2.0, orders[0].Items[0].Qty)

	all, serr := svc.ListAll(context.Background())
	require.Nil(t, serr)
	assert.Len(t, all, 2)
	assert.Equal(t, "u1", all[0].UserID)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid status is stored", func(t *testing.T) {
		repo, id, _ := seedOrders()
		svc := services.NewOrderService(repo, services.OrderServiceConfig{}, awspkg.DisabledMetrics())
		require.Nil(t, svc.UpdateStatus(ctx, id.Hex(), "processing"))

		o, serr := svc.GetOrder(ctx, id.Hex())
		require.Nil(t, serr)
		assert.Equal(t, "processing", o.Status)
	})

	t.Run("invalid status leaves the order unchanged", func(t *testing.T) {
		repo, id, _ := seedOrders()
		svc := services.NewOrderService(repo, services.OrderServiceConfig{}, awspkg.DisabledMetrics())
		serr := svc.UpdateStatus(ctx, id.Hex(), "shipped")
		require.NotNil(t, serr)
		assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
		assert.Equal(t, "Invalid status value", serr.Message)
		assert.Equal(t, 0, repo.writes)

		o, _ := svc.GetOrder(ctx, id.Hex())
		assert.Equal(t, "pending", o.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo, _, _ := seedOrders()
		svc := services.NewOrderService(repo, services.OrderServiceConfig{}, awspkg.DisabledMetrics())
		serr := svc.UpdateStatus(ctx, primitive.NewObjectID().Hex(), "completed")
		require.NotNil(t, serr)
		assert.Equal(t, http.StatusNotFound, serr.StatusCode)

		serr = svc.UpdateStatus(ctx, "bogus", "completed")
		require.NotNil(t, serr)
		assert.Equal(t, http.StatusNotFound, serr.StatusCode)
	})

	t.Run("terminal orders may be reopened unless strict", func(t *testing.T) {
		repo, _, doneID := seedOrders()
		lenient := services.NewOrderService(repo, services.OrderServiceConfig{}, awspkg.DisabledMetrics())
		assert.Nil(t, lenient.UpdateStatus(ctx, doneID.Hex(), "pending"))

		repo, _, doneID = seedOrders()
		strict := services.NewOrderService(repo, services.OrderServiceConfig{StrictTransitions: true}, awspkg.DisabledMetrics())
		serr := strict.UpdateStatus(ctx, doneID.Hex(), "pending")
		require.NotNil(t, serr)
		assert.Equal(t, http.StatusConflict, serr.StatusCode)
		assert.Equal(t, "Order is already completed", serr.Message)
		assert.Nil(t, strict.UpdateStatus(ctx, doneID.Hex(), "completed"))
	})
}
