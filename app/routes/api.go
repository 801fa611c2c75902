// Package routes assembles the HTTP surface: controllers are constructed
// with their dependencies here and mounted on the shared router.
package routes

import (
	"gorm.io/gorm"

	"github.com/merchstore/merchstore/app/controllers"
	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/metrics"
	"github.com/merchstore/merchstore/pkg/middleware"
	"github.com/merchstore/merchstore/pkg/router"
)

// Register mounts every route on r, building the repository, service and
// controller graph from db.
func Register(r *router.Router, db *gorm.DB) {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo)

	authCtl := controllers.NewAuthController(authSvc)
	productCtl := controllers.NewProductController(productSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	healthCtl := controllers.NewHealthController()

	r.Get("/health", "health", healthCtl.Check)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api/v1")

	api.Post("/auth/login", "auth.login", authCtl.Login)

	protected := api.Group("", middleware.Auth)
	protected.Get("/products", "products.index", productCtl.List)
	protected.Get("/categories", "categories.index", productCtl.Categories)
	protected.Post("/orders", "orders.store", orderCtl.Create)
	protected.Get("/orders", "orders.index", orderCtl.List)
}
