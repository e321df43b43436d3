package odata

import (
	"context"
	"encoding/json"
	"fmt"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
)

// ListEntities returns one page of records plus the server-side total.
// Cached results are returned as-is; callers treat records as read-only.
func (r *implRepository) ListEntities(ctx context.Context, opt repository.ListEntitiesOptions) ([]crm.Record, int, error) {
	key := string(opt.Set) + opt.RawQuery
	if hit, ok := r.cache.Get(key); ok {
		r.l.Debugf(ctx, "repo.ListEntities cache hit: %s", key)
		return hit.records, hit.count, nil
	}

	result, err := r.client.List(ctx, opt.Set, opt.RawQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", opt.Set, err)
	}

	records := make([]crm.Record, 0, len(result.Items))
	for _, item := range result.Items {
		var rec crm.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, 0, fmt.Errorf("decode %s record: %w", opt.Set, err)
		}
		records = append(records, rec)
	}

	r.cache.Add(key, cachedList{records: records, count: result.Count})
	return records, result.Count, nil
}

// GetEntity fetches a single record by key.
func (r *implRepository) GetEntity(ctx context.Context, set model.EntitySet, id string) (crm.Record, error) {
	raw, err := r.client.Get(ctx, set, id)
	if err != nil {
		return nil, err
	}

	var rec crm.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", set, err)
	}
	return rec, nil
}

// CreateEntity inserts a record and invalidates cached lists.
func (r *implRepository) CreateEntity(ctx context.Context, set model.EntitySet, payload crm.Record) (crm.Record, error) {
	raw, err := r.client.Create(ctx, set, payload)
	if err != nil {
		return nil, err
	}
	r.cache.Purge()

	var rec crm.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode created %s record: %w", set, err)
	}
	return rec, nil
}

// UpdateEntity patches a record and invalidates cached lists.
func (r *implRepository) UpdateEntity(ctx context.Context, set model.EntitySet, id string, payload crm.Record) (crm.Record, error) {
	raw, err := r.client.Update(ctx, set, id, payload)
	if err != nil {
		return nil, err
	}
	r.cache.Purge()

	var rec crm.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode updated %s record: %w", set, err)
	}
	return rec, nil
}

// DeleteEntity removes a record and invalidates cached lists.
func (r *implRepository) DeleteEntity(ctx context.Context, set model.EntitySet, id string) error {
	if err := r.client.Delete(ctx, set, id); err != nil {
		return err
	}
	r.cache.Purge()
	return nil
}
