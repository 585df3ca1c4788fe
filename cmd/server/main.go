package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/fitrinurazis/batik-storefront/internal/backend"
	"github.com/fitrinurazis/batik-storefront/internal/cart"
	"github.com/fitrinurazis/batik-storefront/internal/cart/cache"
	"github.com/fitrinurazis/batik-storefront/internal/cart/repository"
	"github.com/fitrinurazis/batik-storefront/internal/checkout"
	"github.com/fitrinurazis/batik-storefront/internal/config"
	h "github.com/fitrinurazis/batik-storefront/internal/http"
	"github.com/fitrinurazis/batik-storefront/internal/orderstatus"
	"github.com/fitrinurazis/batik-storefront/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Set up MongoDB connection for the canonical cart store
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	repo := repository.NewMongoRepository(mongoDB)
	if err := repo.CreateIndexes(ctx); err != nil {
		log.Fatalf("Failed to create cart indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.Mongo.URI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Upstream shop backend
	tokens := backend.NewTokenStore()
	client := backend.NewClient(cfg.Backend, tokens)

	cartCache := cache.NewRedisCache(redisClient)
	cartService := cart.NewService(repo, cartCache, client)
	currentOrders := session.NewOrderStore(redisClient)

	checkoutService := checkout.NewService(cartService, client, client, currentOrders)
	adminService := orderstatus.NewAdminService(client)

	cartHandler := h.NewCartHandler(cartService, client, cfg.RequestTimeout)
	catalogHandler := h.NewCatalogHandler(client, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout)
	paymentHandler := h.NewPaymentHandler(client, cartService, currentOrders, cfg.RequestTimeout, cfg.MaxRequestBodySize)
	ordersHandler := h.NewOrdersHandler(client, adminService, currentOrders, cfg.RequestTimeout)
	settingsHandler := h.NewSettingsHandler(client, cfg.RequestTimeout)
	authHandler := h.NewAuthHandler(client, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Get("/totals", cartHandler.Totals)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.ClearCart)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/{product_id}", catalogHandler.GetProduct)
		})

		r.Post("/checkout", checkoutHandler.Submit)

		r.Route("/payment", func(r chi.Router) {
			r.Get("/methods", paymentHandler.Methods)
			r.Get("/{order_id}", paymentHandler.Status)
			r.Post("/{order_id}/confirm", paymentHandler.Confirm)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/current", ordersHandler.Current)
			r.Get("/track/{order_id}", ordersHandler.Track)
			r.Get("/{order_id}", ordersHandler.AdminGet)
			r.Put("/{order_id}/status", ordersHandler.UpdateStatus)
			r.Post("/{order_id}/payment/verify", ordersHandler.VerifyPayment)
			r.Post("/{order_id}/payment/reject", ordersHandler.RejectPayment)
		})

		r.Get("/settings/public", settingsHandler.Public)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	log.Println("server exited")
}
