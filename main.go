package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"ofm_manager/config"
	"ofm_manager/database"
	"ofm_manager/handler"
	"ofm_manager/router"
	"ofm_manager/service"
	"ofm_manager/storage"
	"ofm_manager/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	ctx := context.Background()

	clients, err := database.Connect(ctx, cfg)
	if err != nil {
		logrus.Fatalf("connect: %v", err)
	}
	defer clients.Close()

	docStore := store.NewFirestoreStore(clients.Firestore)
	bucket := storage.NewGCSBucket(cfg.BucketName, clients.Bucket)

	tenants := service.NewTenantService(docStore, bucket)
	members := service.NewMemberService(docStore)
	carts := service.NewCartService(docStore)
	products := service.NewProductService(docStore)
	browse := service.NewBrowseService(bucket, clients.Redis, time.Duration(cfg.ListingCacheTTL)*time.Second)

	h := handler.New(cfg, tenants, members, carts, products, browse)

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // product photos
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	router.SetupRoutes(app, h)

	logrus.Infof("OFM manager listening on :%s", cfg.Port)
	logrus.Fatal(app.Listen(":" + cfg.Port))
}
