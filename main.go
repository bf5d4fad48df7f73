package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshbasket/admin"
	"freshbasket/auth"
	"freshbasket/cart"
	"freshbasket/catalog"
	"freshbasket/config"
	"freshbasket/contact"
	"freshbasket/db"
	"freshbasket/home"
	"freshbasket/middleware"
	"freshbasket/products"
	"freshbasket/profile"
	"freshbasket/ratelim"
	"freshbasket/rdx"
	"freshbasket/recipes"
	"freshbasket/routes"
	"freshbasket/session"
	"freshbasket/store"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

// stores is the set of collections the handlers work against.
type stores struct {
	products store.Products
	accounts store.Accounts
	carts    store.Carts
	orders   store.Orders
	contacts store.Contacts
}

func openStores(ctx context.Context, cfg config.Config) (stores, func(context.Context), error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Println("🧪 Using in-memory store; data is lost on restart")
		mem := store.NewMemory()
		return stores{
			products: mem.Products(),
			accounts: mem.Accounts(),
			carts:    mem.Carts(),
			orders:   mem.Orders(),
			contacts: mem.Contacts(),
		}, func(context.Context) {}, nil
	}

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return stores{}, nil, err
	}
	log.Printf("✅ Connected to MongoDB database %s", cfg.MongoDatabase)
	if err := database.EnsureCollections(ctx); err != nil {
		_ = database.Close(context.Background())
		return stores{}, nil, err
	}
	closer := func(ctx context.Context) {
		if err := database.Close(ctx); err != nil {
			log.Printf("❌ MongoDB disconnect: %v", err)
		}
	}
	return stores{
		products: &store.MongoProducts{Coll: database.Products},
		accounts: &store.MongoAccounts{Coll: database.Users},
		carts:    &store.MongoCarts{Coll: database.Cart},
		orders:   &store.MongoOrders{Coll: database.Orders},
		contacts: &store.MongoContacts{Coll: database.ContactMessages},
	}, closer, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	st, closeStores, err := openStores(startCtx, cfg)
	if err != nil {
		log.Fatalf("❌ Store error: %v", err)
	}

	// redis backs sessions and the catalog cache when configured
	var (
		redisClient  *redis.Client
		sessionStore session.Store = session.NewMemoryStore()
		catalogCache *catalog.Cache
	)
	if cfg.RedisAddr != "" {
		if redisClient, err = rdx.Connect(startCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			log.Fatalf("❌ Redis error: %v", err)
		}
		log.Printf("✅ Connected to Redis at %s", cfg.RedisAddr)
		sessionStore = session.NewRedisStore(redisClient)
		catalogCache = catalog.NewCache(redisClient, cfg.CatalogCacheTTL)
	} else {
		log.Println("No REDIS_ADDR set; sessions kept in memory, catalog cache disabled")
	}

	cat := catalog.New(st.products, catalogCache)
	if err := cat.Seed(startCtx); err != nil {
		log.Fatalf("❌ %v", err)
	}

	accounts := auth.NewService(st.accounts, auth.NewPasswordHasher(auth.DefaultBcryptCost))
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := accounts.EnsureAdmin(startCtx, cfg.AdminEmail, cfg.AdminPassword, "Admin"); err != nil {
			log.Fatalf("❌ Admin bootstrap error: %v", err)
		}
	}

	sessions := session.NewManager(sessionStore, cfg.SecretKey, cfg.SessionTTL, cfg.SecureCookies)
	inbox := contact.NewService(st.contacts)
	timeout := cfg.RequestTimeout

	router := routes.New(routes.Handlers{
		Home:     home.NewHandler(cat, timeout),
		Products: products.NewHandler(cat, timeout),
		Auth:     auth.NewHandler(accounts, sessions, timeout),
		Cart:     cart.NewHandler(cart.NewService(cat, st.carts), timeout),
		Recipes:  recipes.NewHandler(cat, timeout),
		Contact:  contact.NewHandler(inbox, timeout),
		Profile:  profile.NewHandler(accounts, st.orders, timeout),
		Admin:    admin.NewHandler(cat, st.accounts, inbox, timeout),
	}, sessions, ratelim.NewRateLimiter(cfg.RateLimit, cfg.RateBurst))

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.Logging(middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("🛑 Closing store connections...")
	closeStores(ctx)
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("❌ Redis close: %v", err)
		}
	}

	log.Println("✅ Server stopped cleanly")
}
