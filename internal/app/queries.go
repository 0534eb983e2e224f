package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"alx_stays/internal/domain"
)

type QueryService struct {
	store    domain.PropertyStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s domain.PropertyStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

// ListProperties loads the collection from the store and applies the
// filter pipeline in memory. Results are cached per criteria key.
func (s *QueryService) ListProperties(ctx context.Context, c domain.Criteria) ([]domain.Property, error) {
	key := criteriaKey(c)
	var cached []domain.Property
	if ok, _ := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}
	ps, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	out := Filter(ps, c)
	s.cacheSet(ctx, key, out)
	return out, nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := "property:" + id
	var cached domain.Property
	if ok, _ := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}
	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	s.cacheSet(ctx, key, p)
	return p, nil
}

func (s *QueryService) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	key := "reviews:" + propertyID
	var cached []domain.Review
	if ok, _ := s.cacheGet(ctx, key, &cached); ok {
		return cached, nil
	}
	rs, err := s.store.ListReviews(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.Review, len(rs))
	copy(cp, rs)
	s.cacheSet(ctx, key, cp)
	return cp, nil
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.Get(ctx, key, dst)
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

// criteriaKey hashes the criteria into a stable cache key. Unset fields
// hash the same as absent ones so equivalent searches share an entry.
func criteriaKey(c domain.Criteria) string {
	s := fmt.Sprintf("s=%s|min=%s|max=%s|type=%s|bed=%s|rating=%s",
		c.Search, fmtF(c.MinPrice), fmtF(c.MaxPrice), c.PropertyType, fmtI(c.MinBedrooms), fmtF(c.MinRating))
	sum := sha1.Sum([]byte(s))
	return "properties:" + hex.EncodeToString(sum[:])
}

func fmtF(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%g", *p)
}

func fmtI(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}
