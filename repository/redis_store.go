package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"loan-advisor/domain"
)

const templateHashKey = "loan_advisor:templates"

// RedisOverrideStore keeps custom templates in a Redis hash keyed by
// template ID, one JSON document per field.
type RedisOverrideStore struct {
	client *redis.Client
}

func NewRedisOverrideStore(addr string) *RedisOverrideStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisOverrideStore{client: rdb}
}

func (r *RedisOverrideStore) List(ctx context.Context) ([]domain.ProductTemplate, error) {
	fields, err := r.client.HGetAll(ctx, templateHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list custom templates: %w", err)
	}
	out := make([]domain.ProductTemplate, 0, len(fields))
	for id, raw := range fields {
		var tpl domain.ProductTemplate
		if err := json.Unmarshal([]byte(raw), &tpl); err != nil {
			return nil, fmt.Errorf("decode custom template %s: %w", id, err)
		}
		out = append(out, tpl)
	}
	return out, nil
}

func (r *RedisOverrideStore) Put(ctx context.Context, tpl domain.ProductTemplate) error {
	if err := ValidateTemplate(tpl); err != nil {
		return err
	}
	raw, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("encode custom template %s: %w", tpl.ID, err)
	}
	if err := r.client.HSet(ctx, templateHashKey, tpl.ID, raw).Err(); err != nil {
		return fmt.Errorf("store custom template %s: %w", tpl.ID, err)
	}
	return nil
}

func (r *RedisOverrideStore) Delete(ctx context.Context, id string) error {
	if err := r.client.HDel(ctx, templateHashKey, id).Err(); err != nil {
		return fmt.Errorf("delete custom template %s: %w", id, err)
	}
	return nil
}

// Ping verifies connectivity during startup.
func (r *RedisOverrideStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
