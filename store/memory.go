package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store for tests. It supports the filter subset
// the application uses: field equality and $gte. It is never wired into the
// server; startup fails fast when the real store is unreachable.
type MemoryStore struct {
	mu   sync.RWMutex
	cols map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string][]bson.M)}
}

func (s *MemoryStore) Collection(name string) Collection {
	return &memoryCollection{store: s, name: name}
}

func (s *MemoryStore) Ping(ctx context.Context) error  { return nil }
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

type memoryCollection struct {
	store *MemoryStore
	name  string
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, doc := range c.store.cols[c.name] {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNoDocuments
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, out interface{}) error {
	// Copy matches while holding the lock; sorting and decoding must never
	// observe a concurrent write to the shared documents.
	c.store.mu.RLock()
	var matched []bson.M
	for _, doc := range c.store.cols[c.name] {
		if matches(doc, filter) {
			copied, err := toDoc(doc)
			if err != nil {
				c.store.mu.RUnlock()
				return err
			}
			matched = append(matched, copied)
		}
	}
	c.store.mu.RUnlock()

	if opts.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][opts.SortField], matched[j][opts.SortField])
			if opts.SortDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return decodeSlice(matched, out)
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	converted, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	id, ok := converted["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		converted["_id"] = id
	}

	c.store.mu.Lock()
	c.store.cols[c.name] = append(c.store.cols[c.name], converted)
	c.store.mu.Unlock()
	return id.Hex(), nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	for _, doc := range c.store.cols[c.name] {
		if matches(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

// UpsertOne replaces the first match under the write lock, so concurrent
// upserts with the same filter cannot both insert.
func (c *memoryCollection) UpsertOne(ctx context.Context, filter bson.M, doc interface{}) error {
	converted, err := toDoc(doc)
	if err != nil {
		return err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	for i, existing := range c.store.cols[c.name] {
		if matches(existing, filter) {
			converted["_id"] = existing["_id"]
			c.store.cols[c.name][i] = converted
			return nil
		}
	}
	if id, ok := converted["_id"].(primitive.ObjectID); !ok || id.IsZero() {
		converted["_id"] = primitive.NewObjectID()
	}
	c.store.cols[c.name] = append(c.store.cols[c.name], converted)
	return nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.cols[c.name]
	for i, doc := range docs {
		if matches(doc, filter) {
			c.store.cols[c.name] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// toDoc round-trips a value through bson so inserts hold their own copy.
func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeSlice(docs []bson.M, out interface{}) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: out must be a pointer to a slice, got %T", out)
	}
	slice := v.Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}

func matches(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if cond, isCond := want.(bson.M); isCond {
			for op, val := range cond {
				switch op {
				case "$gte":
					if !ok || compareValues(got, val) < 0 {
						return false
					}
				default:
					return false
				}
			}
			continue
		}
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

// normalize folds the numeric types bson produces into float64 and object
// ids into hex so filter values compare against stored values.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case primitive.DateTime:
		return float64(n)
	case primitive.ObjectID:
		return n.Hex()
	default:
		return v
	}
}

func equalValues(a, b interface{}) bool {
	return normalize(a) == normalize(b)
}

func compareValues(a, b interface{}) int {
	af, aok := normalize(a).(float64)
	bf, bok := normalize(b).(float64)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprintf("%v", normalize(a)), fmt.Sprintf("%v", normalize(b)))
}
