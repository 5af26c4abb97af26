package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"ofm_manager/config"
)

// Clients bundles every external client the service talks to. Built once
// here and handed to the services; there are no package-level handles.
type Clients struct {
	Firestore *firestore.Client
	Bucket    *gcs.BucketHandle
	Redis     *redis.Client
}

// Connect initializes the firebase app from the service-account JSON in
// FIREBASE_SERVICE_KEY and opens the firestore and bucket clients. Redis
// is optional; without REDIS_ADDR the listing cache is disabled.
func Connect(ctx context.Context, cfg config.App) (*Clients, error) {
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("missing FIREBASE_SERVICE_KEY")
	}
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("missing STORAGE_BUCKET")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: cfg.BucketName},
		option.WithCredentialsJSON([]byte(cfg.ServiceKey)))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore: %w", err)
	}

	st, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	bucket, err := st.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("open bucket: %w", err)
	}

	clients := &Clients{Firestore: fs, Bucket: bucket}
	if cfg.RedisAddr != "" {
		clients.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := clients.Redis.Ping(ctx).Err(); err != nil {
			logrus.Warnf("redis unreachable, listing cache disabled: %v", err)
			clients.Redis = nil
		}
	}
	logrus.Info("Connection opened to Firestore and Storage")
	return clients, nil
}

// Close releases the firestore and redis connections.
func (c *Clients) Close() {
	if c.Firestore != nil {
		c.Firestore.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}
