// Package repository contains the data access layer: one GORM repository for
// users and one collection repository per ledger. Ledger repositories follow
// a read-entire-collection / write-entire-collection-back model.
package repository

import (
	"context"
	"encoding/json"

	"github.com/MichaelOwusu007/vdlpro/internal/store"

	"github.com/rs/zerolog/log"
)

// loadCollection reads and decodes the collection stored under key.
// Missing or corrupt payloads degrade to the empty collection — never an
// error. Only infrastructure failures (store unreachable) propagate.
func loadCollection[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err == store.ErrKeyNotFound {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("corrupt collection payload, falling back to empty")
		return []T{}, nil
	}
	return items, nil
}

// saveCollection encodes and writes the full collection in one Set.
func saveCollection[T any](ctx context.Context, s store.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
