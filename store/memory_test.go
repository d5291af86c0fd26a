package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type testDoc struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Group     string    `bson:"group"`
	Rank      int       `bson:"rank"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"created_at"`
}

func TestMemoryFindOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	require.NoError(t, coll.InsertOne(ctx, testDoc{ID: "a", Name: "first", Active: true}))

	var got testDoc
	require.NoError(t, coll.FindOne(ctx, bson.M{"id": "a"}, &got))
	assert.Equal(t, "first", got.Name)
	assert.True(t, got.Active)

	err := coll.FindOne(ctx, bson.M{"id": "b"}, &got)
	assert.ErrorIs(t, err, ErrNoDocuments)

	// Boolean equality filter
	require.NoError(t, coll.FindOne(ctx, bson.M{"active": true}, &got))
	assert.Equal(t, "a", got.ID)
}

func TestMemoryFindSortAndLimit(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, coll.InsertOne(ctx, testDoc{
			ID: id, Rank: 3 - i, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	var byRank []testDoc
	require.NoError(t, coll.Find(ctx, bson.M{}, &byRank, &FindOptions{Sort: bson.D{{Key: "rank", Value: 1}}}))
	require.Len(t, byRank, 3)
	assert.Equal(t, "c", byRank[0].ID)
	assert.Equal(t, "a", byRank[2].ID)

	var newest []testDoc
	require.NoError(t, coll.Find(ctx, bson.M{}, &newest, &FindOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: 2,
	}))
	require.Len(t, newest, 2)
	assert.Equal(t, "c", newest[0].ID)
	assert.Equal(t, "b", newest[1].ID)
}

func TestMemoryUpdateOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	require.NoError(t, coll.InsertOne(ctx, testDoc{ID: "a", Name: "before"}))

	matched, err := coll.UpdateOne(ctx, bson.M{"id": "a"}, bson.M{"$set": bson.M{"name": "after"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var got testDoc
	require.NoError(t, coll.FindOne(ctx, bson.M{"id": "a"}, &got))
	assert.Equal(t, "after", got.Name)

	matched, err = coll.UpdateOne(ctx, bson.M{"id": "b"}, bson.M{"$set": bson.M{"name": "x"}})
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestMemoryUpsertOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	// First call inserts
	require.NoError(t, coll.UpsertOne(ctx, bson.M{"id": "s"}, bson.M{"$set": bson.M{"name": "one"}}))
	var got testDoc
	require.NoError(t, coll.FindOne(ctx, bson.M{"id": "s"}, &got))
	assert.Equal(t, "one", got.Name)

	// Second call updates in place, no duplicate
	require.NoError(t, coll.UpsertOne(ctx, bson.M{"id": "s"}, bson.M{"$set": bson.M{"name": "two"}}))
	var all []testDoc
	require.NoError(t, coll.Find(ctx, bson.M{}, &all, nil))
	require.Len(t, all, 1)
	assert.Equal(t, "two", all[0].Name)
}

func TestMemoryDeleteOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	require.NoError(t, coll.InsertOne(ctx, testDoc{ID: "a"}))

	deleted, err := coll.DeleteOne(ctx, bson.M{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = coll.DeleteOne(ctx, bson.M{"id": "a"})
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestMemoryDistinct(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	for _, doc := range []testDoc{
		{ID: "1", Group: "Mains"},
		{ID: "2", Group: "Mains"},
		{ID: "3", Group: "Starters"},
		{ID: "4", Group: "Breads", Active: true},
	} {
		require.NoError(t, coll.InsertOne(ctx, doc))
	}

	groups, err := coll.Distinct(ctx, "group", bson.M{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Breads", "Mains", "Starters"}, groups)

	groups, err = coll.Distinct(ctx, "group", bson.M{"active": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Breads"}, groups)
}
