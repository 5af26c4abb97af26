package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"ofm_manager/model"
	"ofm_manager/storage"
)

// BrowseService serves the shops/modes/images endpoints: pure derived
// views over the bucket listing. Object keys look like
// "market/shop/mode/photo.jpg" and each path depth is one synthetic
// folder level.
type BrowseService struct {
	Bucket storage.Bucket
	// Cache is optional; when set, bucket listings are cached for TTL so
	// repeat page requests reuse one listing. Pagination itself is still
	// in-memory slicing of the full listing, as in the legacy service.
	Cache *redis.Client
	TTL   time.Duration
}

func NewBrowseService(bucket storage.Bucket, cache *redis.Client, ttl time.Duration) *BrowseService {
	return &BrowseService{Bucket: bucket, Cache: cache, TTL: ttl}
}

// Shops lists the shop folders of a market.
func (s *BrowseService) Shops(ctx context.Context, tenant string) ([]string, error) {
	return s.segments(ctx, tenant+"/", 1)
}

// Modes lists the mode folders of a shop.
func (s *BrowseService) Modes(ctx context.Context, tenant, shop string) ([]string, error) {
	return s.segments(ctx, fmt.Sprintf("%s/%s/", tenant, shop), 2)
}

// Images returns one page of public image URLs for a mode folder. Only
// .jpg objects count; the whole listing is filtered and sliced in memory,
// so total and has_more are exact.
func (s *BrowseService) Images(ctx context.Context, q model.BrowseQuery) (*model.ImagePage, error) {
	keys, err := s.listKeys(ctx, fmt.Sprintf("%s/%s/%s/", q.TenantName, q.Shop, q.Mode))
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasSuffix(strings.ToLower(key), ".jpg") {
			images = append(images, s.Bucket.PublicURL(key))
		}
	}

	if q.Page < 1 {
		q.Page = 1
	}
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	page := &model.ImagePage{
		Page:    q.Page,
		Total:   len(images),
		HasMore: end < len(images),
		Images:  []string{},
	}
	if start < len(images) {
		if end > len(images) {
			end = len(images)
		}
		page.Images = images[start:end]
	}
	return page, nil
}

// UploadImage stores a product photo under the mode folder and returns its
// public URL. The key keeps the slugified original name plus a short
// random suffix so repeated uploads never clobber each other.
func (s *BrowseService) UploadImage(ctx context.Context, tenant, shop, mode, filename string, data []byte, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	base := slug.Make(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if base == "" {
		base = "image"
	}
	key := fmt.Sprintf("%s/%s/%s/%s-%s%s", tenant, shop, mode, base, uuid.NewString()[:8], ext)
	if err := s.Bucket.Upload(ctx, key, data, contentType); err != nil {
		return "", err
	}
	s.invalidate(ctx, fmt.Sprintf("%s/%s/%s/", tenant, shop, mode))
	return s.Bucket.PublicURL(key), nil
}

// segments lists the prefix and collects the n-th key segment as the
// synthetic folder names at that depth, sorted and de-duplicated.
func (s *BrowseService) segments(ctx context.Context, prefix string, n int) ([]string, error) {
	keys, err := s.listKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) >= n+1 && parts[n] != "" && !strings.HasPrefix(parts[n], ".") {
			seen[parts[n]] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (s *BrowseService) listKeys(ctx context.Context, prefix string) ([]string, error) {
	cacheKey := "listing:" + prefix
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var keys []string
			if json.Unmarshal([]byte(raw), &keys) == nil {
				return keys, nil
			}
		}
	}
	keys, err := s.Bucket.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if raw, err := json.Marshal(keys); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, s.TTL).Err(); err != nil {
				logrus.Warnf("listing cache write failed: %v", err)
			}
		}
	}
	return keys, nil
}

func (s *BrowseService) invalidate(ctx context.Context, prefix string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, "listing:"+prefix).Err(); err != nil {
		logrus.Warnf("listing cache invalidation failed: %v", err)
	}
}
