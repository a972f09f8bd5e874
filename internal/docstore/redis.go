package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore mirrors documents into Redis: each document is a JSON string at
// prefix:collection/id, prefix:collection is a set of its ids, and
// prefix:__collections__ is the set of collection paths written so far.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to addr and pings it.
func NewRedis(ctx context.Context, addr, password string, db int, prefix string) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if prefix == "" {
		prefix = "docs"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) docKey(collection, id string) string {
	return fmt.Sprintf("%s:%s/%s", s.prefix, collection, id)
}

func (s *RedisStore) indexKey(collection string) string {
	return fmt.Sprintf("%s:%s", s.prefix, collection)
}

func (s *RedisStore) collectionsKey() string {
	return s.prefix + ":__collections__"
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, doc any) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.write(ctx, collection, id, doc); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := s.write(ctx, collection, id, doc); err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return id, nil
}

func (s *RedisStore) write(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(collection, id), data, 0)
		pipe.SAdd(ctx, s.indexKey(collection), id)
		pipe.SAdd(ctx, s.collectionsKey(), collection)
		return nil
	})
	return err
}

// Get decodes collection/id into out. It reports false if the document does not exist.
func (s *RedisStore) Get(ctx context.Context, collection, id string, out any) (bool, error) {
	data, err := s.client.Get(ctx, s.docKey(collection, id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// Count returns the number of ids recorded for collection.
func (s *RedisStore) Count(ctx context.Context, collection string) (int, error) {
	n, err := s.client.SCard(ctx, s.indexKey(collection)).Result()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return int(n), nil
}

// Collections lists every collection path with its document count, sorted by path.
func (s *RedisStore) Collections(ctx context.Context) ([]CollectionCount, error) {
	names, err := s.client.SMembers(ctx, s.collectionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	sort.Strings(names)

	out := make([]CollectionCount, 0, len(names))
	for _, name := range names {
		n, err := s.Count(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, CollectionCount{Collection: name, Count: n})
	}
	return out, nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
