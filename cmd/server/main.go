package main

import (
	"log"
	"net/http"

	"github.com/pradeepkasula/online-shopping-cart/internal/cart"
	"github.com/pradeepkasula/online-shopping-cart/internal/config"
	"github.com/pradeepkasula/online-shopping-cart/internal/db"
	"github.com/pradeepkasula/online-shopping-cart/internal/httpx"
	"github.com/pradeepkasula/online-shopping-cart/internal/inventory"
	"github.com/pradeepkasula/online-shopping-cart/internal/logger"
	"github.com/pradeepkasula/online-shopping-cart/internal/order"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// One product service client for the whole process, shared by both
	// services.
	inventoryClient := inventory.NewClient(cfg.ProductServiceURL, cfg.InventoryTimeout)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, inventoryClient)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, inventoryClient)

	r := httpx.NewRouter(cfg.JWTSecret)
	(&httpx.CartHandler{Service: cartSvc}).Register(r)
	(&httpx.OrderHandler{Service: orderSvc}).Register(r)

	log.Printf("🚀 Shopping cart server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, r))
}
