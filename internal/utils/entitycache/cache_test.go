package entitycache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/SscSPs/almacen_erp_lite/internal/utils/entitycache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func (i item) GetID() string { return i.ID }

func TestCache_ReplacePutRemove(t *testing.T) {
	c := entitycache.New[item]()
	assert.False(t, c.Loaded())

	c.Replace([]item{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}})
	assert.True(t, c.Loaded())
	assert.Len(t, c.All(), 3)

	c.Put(item{ID: "b", Name: "B2"})
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "B2", got.Name)
	assert.Len(t, c.All(), 3)

	c.Put(item{ID: "d", Name: "D"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(c.All()))

	c.Remove("b")
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "c", "d"}, ids(c.All()))

	got, ok = c.Get("d")
	require.True(t, ok, "index is rebuilt after removal")
	assert.Equal(t, "D", got.Name)

	c.Remove("missing")
	assert.Len(t, c.All(), 3)
}

func TestCache_AllReturnsSnapshot(t *testing.T) {
	c := entitycache.New[item]()
	c.Replace([]item{{ID: "a", Name: "A"}})

	snap := c.All()
	snap[0].Name = "changed"

	got, _ := c.Get("a")
	assert.Equal(t, "A", got.Name)
}

func TestCache_StatusTracksErrors(t *testing.T) {
	c := entitycache.New[item]()
	st := c.Status()
	assert.False(t, st.Loaded)
	assert.Nil(t, st.RefreshedAt)

	c.Replace([]item{{ID: "a"}})
	c.RecordError(errors.New("connection refused"))

	st = c.Status()
	assert.True(t, st.Loaded)
	assert.Equal(t, 1, st.Count)
	assert.NotNil(t, st.RefreshedAt)
	assert.Equal(t, "connection refused", st.LastError)

	c.Replace(nil)
	assert.Empty(t, c.Status().LastError)
	assert.Equal(t, 0, c.Status().Count)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := entitycache.New[item]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Put(item{ID: fmt.Sprintf("id-%d", n)})
		}(i)
		go func() {
			defer wg.Done()
			_ = c.All()
		}()
	}
	wg.Wait()
	assert.Len(t, c.All(), 50)
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
