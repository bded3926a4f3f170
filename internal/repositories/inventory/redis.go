package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
)

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed inventory
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if client == nil {
		panic("redis client is required")
	}
	if timeProvider == nil {
		timeProvider = SystemTime
	}

	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}

func ownerItemsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:items", ownerID)
}

func (r *redisRepo) Add(ctx context.Context, ownerID string, item *entities.Item) error {
	if ownerID == "" {
		return geoerr.InvalidArgument("owner ID is required")
	}
	if item == nil || item.ID == "" {
		return geoerr.InvalidArgument("item with an ID is required")
	}

	existing, err := r.getData(ctx, item.ID)
	switch {
	case err == nil && existing.OwnerID != ownerID:
		return ownedElsewhere(item.ID)
	case err != nil && !geoerr.IsNotFound(err):
		return err
	}

	jsonData, err := json.Marshal(Data{
		OwnerID: ownerID,
		Item:    item,
		AddedAt: r.timeProvider.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal item data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, itemKey(item.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerItemsKey(ownerID), item.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add item to Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Item, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Item, nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, geoerr.InvalidArgument("item ID is required")
	}

	jsonData, err := r.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, geoerr.NotFoundf("item '%s' not found", id).WithMeta("item_id", id)
		}
		return nil, fmt.Errorf("failed to get item from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item data: %w", err)
	}
	return &data, nil
}

func (r *redisRepo) Remove(ctx context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return geoerr.InvalidArgument("owner ID and item ID are required")
	}

	data, err := r.getData(ctx, id)
	if err != nil {
		if geoerr.IsNotFound(err) {
			r.forget(ctx, ownerID, id)
		}
		return err
	}
	if data.OwnerID != ownerID {
		return geoerr.NotFoundf("item '%s' not found", id).WithMeta("item_id", id)
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, itemKey(id))
	pipe.SRem(ctx, ownerItemsKey(ownerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove item from Redis: %w", err)
	}

	if del.Val() == 0 {
		return geoerr.NotFoundf("item '%s' not found", id).WithMeta("item_id", id)
	}
	return nil
}

// List skips set members whose record is gone or belongs to someone else,
// and drops them from the owner's set.
func (r *redisRepo) List(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, geoerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerItemsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner items from Redis: %w", err)
	}

	records := make([]*Data, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			data, err := r.getData(gctx, id)
			if err != nil {
				if geoerr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get item %s: %w", id, err)
			}
			if data.OwnerID == ownerID {
				records[i] = data
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]*Data, 0, len(records))
	var stale []string
	for i, data := range records {
		if data == nil {
			stale = append(stale, ids[i])
			continue
		}
		kept = append(kept, data)
	}
	r.forget(ctx, ownerID, stale...)

	return sortedItems(kept), nil
}

// forget drops ids from the owner's set without touching item records
func (r *redisRepo) forget(ctx context.Context, ownerID string, ids ...string) {
	if len(ids) == 0 {
		return
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	log.Printf("Inventory: dropping %d stale item(s) from %s: %v", len(ids), ownerID, ids)
	if err := r.client.SRem(ctx, ownerItemsKey(ownerID), members...).Err(); err != nil {
		log.Printf("Inventory: failed to drop stale items for %s: %v", ownerID, err)
	}
}

func ownedElsewhere(id string) error {
	return geoerr.AlreadyExistsf("item '%s' belongs to another owner", id).WithMeta("item_id", id)
}

// sortedItems orders by time added, then id
func sortedItems(records []*Data) []*entities.Item {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].AddedAt.Equal(records[j].AddedAt) {
			return records[i].AddedAt.Before(records[j].AddedAt)
		}
		return records[i].Item.ID < records[j].Item.ID
	})

	items := make([]*entities.Item, 0, len(records))
	for _, data := range records {
		items = append(items, data.Item)
	}
	return items
}
