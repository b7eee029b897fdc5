package routes

import (
	"net/http"

	"github.com/YeshwantRaoB/organizon-web/controllers"
	"github.com/YeshwantRaoB/organizon-web/identity"
	"github.com/YeshwantRaoB/organizon-web/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler set the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Cart     *controllers.CartController
	Orders   *controllers.OrderController
	Products *controllers.ProductController
	Bulk     *controllers.BulkImportController
	Address  *controllers.AddressController
	Admin    *controllers.AdminController
	Images   *controllers.ImageController
}

// Guards are the auth gates shared by every protected route.
type Guards struct {
	Verifier identity.Verifier
	Policy   identity.AdminPolicy
	Metrics  *middleware.HTTPMetrics
}

func RegisterRoutes(r *gin.Engine, ctl Controllers, g Guards) {
	requireUser := middleware.RequireUser(g.Verifier, g.Metrics)
	requireAdmin := middleware.RequireAdmin(g.Policy)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	if g.Metrics != nil {
		r.GET("/metrics", gin.WrapH(g.Metrics.Handler()))
	}

	api := r.Group("/api")

	// Public catalogue
	api.GET("/products", ctl.Products.GetProducts)
	api.GET("/products/:id", ctl.Products.GetProduct)

	// Signed-in customers
	user := api.Group("", requireUser)
	{
		user.POST("/verify-token", ctl.Auth.VerifyToken)
		user.GET("/admin/check", ctl.Auth.CheckAdmin)

		user.GET("/cart", ctl.Cart.GetCart)
		user.POST("/cart", ctl.Cart.SaveCart)
		user.DELETE("/cart", ctl.Cart.ClearCart)

		user.GET("/orders", ctl.Orders.GetOrders)

		user.GET("/user/addresses", ctl.Address.ListAddresses)
		user.POST("/user/addresses", ctl.Address.CreateAddress)
		user.PUT("/user/addresses/:id", ctl.Address.UpdateAddress)
		user.DELETE("/user/addresses/:id", ctl.Address.DeleteAddress)
	}

	// Catalogue writes share the public paths but need admin.
	productAdmin := api.Group("/products", requireUser, requireAdmin)
	{
		productAdmin.POST("", ctl.Products.CreateProduct)
		productAdmin.PUT("/:id", ctl.Products.UpdateProduct)
		productAdmin.DELETE("/:id", ctl.Products.DeleteProduct)
	}

	admin := api.Group("/admin", requireUser, requireAdmin)
	{
		admin.GET("/orders", ctl.Orders.GetAllOrders)
		admin.GET("/orders/:id", ctl.Orders.GetOrder)
		admin.PATCH("/orders/:id", ctl.Orders.UpdateOrderStatus)

		admin.POST("/bulk-products", ctl.Bulk.BulkImport)

		admin.GET("/stats", ctl.Admin.GetStats)

		admin.GET("/users", ctl.Admin.ListUsers)
		admin.POST("/users", ctl.Admin.SetAdmin)
		admin.DELETE("/users", ctl.Admin.DeleteUser)

		admin.GET("/settings", ctl.Admin.GetSettings)
		admin.POST("/settings", ctl.Admin.SaveSettings)

		admin.GET("/pages", ctl.Admin.GetPage)
		admin.POST("/pages", ctl.Admin.SavePage)

		admin.POST("/images", ctl.Images.UploadImage)
		admin.POST("/images/presign", ctl.Images.PresignUpload)
	}
}
