// internal/infrastructure/store/memory_test.go
package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

type note struct {
	ID    string `json:"id,omitempty"`
	Owner string `json:"owner"`
	Body  string `json:"body"`
	Count int    `json:"count"`
}

func TestInsertAssignsID(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	id, err := st.Insert(ctx, "notes", &note{Owner: "ada", Body: "first"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	var got note
	require.NoError(t, st.Get(ctx, "notes", id, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "first", got.Body)
}

func TestInsertKeepsProvidedID(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	id, err := st.Insert(ctx, "notes", &note{ID: "fixed-id", Owner: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestGetMissing(t *testing.T) {
	st := store.NewMemory()

	var got note
	err := st.Get(context.Background(), "notes", "nope", &got)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQueryMatchesSingleField(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	_, err := st.Insert(ctx, "notes", &note{Owner: "ada", Body: "a"})
	require.NoError(t, err)
	_, err = st.Insert(ctx, "notes", &note{Owner: "bob", Body: "b"})
	require.NoError(t, err)
	_, err = st.Insert(ctx, "notes", &note{Owner: "ada", Body: "c"})
	require.NoError(t, err)

	var got []note
	require.NoError(t, st.Query(ctx, "notes", "owner", "ada", &got))
	require.Len(t, got, 2)

	// Insertion order is preserved
	assert.Equal(t, "a", got[0].Body)
	assert.Equal(t, "c", got[1].Body)
}

func TestQueryNoMatches(t *testing.T) {
	st := store.NewMemory()

	var got []note
	require.NoError(t, st.Query(context.Background(), "notes", "owner", "ada", &got))
	assert.Empty(t, got)
}

func TestListReturnsAllInInsertionOrder(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	for _, body := range []string{"a", "b", "c"} {
		_, err := st.Insert(ctx, "notes", &note{Owner: "ada", Body: body})
		require.NoError(t, err)
	}

	var got []note
	require.NoError(t, st.List(ctx, "notes", &got))
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Body)
	assert.Equal(t, "c", got[2].Body)
}

func TestUpdateMergesFields(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	id, err := st.Insert(ctx, "notes", &note{Owner: "ada", Body: "before", Count: 1})
	require.NoError(t, err)

	require.NoError(t, st.Update(ctx, "notes", id, map[string]any{"count": 7}))

	var got note
	require.NoError(t, st.Get(ctx, "notes", id, &got))
	assert.Equal(t, 7, got.Count)
	assert.Equal(t, "before", got.Body)
}

func TestUpdateMissing(t *testing.T) {
	st := store.NewMemory()

	err := st.Update(context.Background(), "notes", "nope", map[string]any{"count": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	id, err := st.Insert(ctx, "notes", &note{Owner: "ada"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(ctx, "notes", id))
	require.NoError(t, st.Delete(ctx, "notes", id))

	var got note
	assert.ErrorIs(t, st.Get(ctx, "notes", id, &got), store.ErrNotFound)
}
