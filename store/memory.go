package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store for tests and local development without
// a running MongoDB. It supports the same operation subset as MongoStore:
// equality filters, $set updates, sorted and limited listings.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, ok := s.collections[name]
	if !ok {
		coll = &memoryCollection{}
		s.collections[name] = coll
	}
	return coll
}

type memoryCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

// toDoc normalizes an arbitrary struct or map into a bson.M, the same shape
// a Mongo round trip would produce.
func toDoc(v any) (bson.M, error) {
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

func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// valuesEqual compares a stored field against a filter value, tolerating the
// numeric-type widening a bson round trip introduces.
func valuesEqual(stored, filter any) bool {
	if sf, ok := toFloat(stored); ok {
		ff, fok := toFloat(filter)
		return fok && sf == ff
	}
	return reflect.DeepEqual(stored, filter)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}

func matches(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		if !valuesEqual(doc[field], want) {
			return false
		}
	}
	return true
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return ErrNoDocuments
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, out any, opts *FindOptions) error {
	c.mu.Lock()
	found := make([]bson.M, 0)
	for _, doc := range c.docs {
		if matches(doc, filter) {
			found = append(found, doc)
		}
	}
	c.mu.Unlock()

	if opts != nil && len(opts.Sort) > 0 {
		key := opts.Sort[0].Key
		desc := false
		if dir, ok := opts.Sort[0].Value.(int); ok && dir < 0 {
			desc = true
		}
		sort.SliceStable(found, func(i, j int) bool {
			if desc {
				return lessValue(found[j][key], found[i][key])
			}
			return lessValue(found[i][key], found[j][key])
		})
	}
	if opts != nil && opts.Limit > 0 && int64(len(found)) > opts.Limit {
		found = found[:opts.Limit]
	}

	slice := reflect.ValueOf(out).Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(found))
	for _, doc := range found {
		elem := reflect.New(slice.Type().Elem())
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}

func lessValue(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, bok := toFloat(b)
		return bok && af < bf
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	return aok && bok && as < bs
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc any) error {
	normalized, err := toDoc(doc)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, normalized)
	return nil
}

func setFields(update bson.M) (bson.M, error) {
	set, ok := update["$set"]
	if !ok {
		return bson.M{}, nil
	}
	return toDoc(set)
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter, update bson.M) (int64, error) {
	fields, err := setFields(update)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			for k, v := range fields {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memoryCollection) UpsertOne(ctx context.Context, filter, update bson.M) error {
	matched, err := c.UpdateOne(ctx, filter, update)
	if err != nil || matched > 0 {
		return err
	}
	fields, err := setFields(update)
	if err != nil {
		return err
	}
	doc, err := toDoc(filter)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
	return nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memoryCollection) Distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, doc := range c.docs {
		if !matches(doc, filter) {
			continue
		}
		if s, ok := doc[field].(string); ok && !seen[s] {
			seen[s] = true
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}
