package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		// overwrite keeps the original position
		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)
		assert.Equal(t, []string{"one", "two", "three"}, om.Keys())

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
	})

	t.Run("set if absent", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.True(t, om.SetIfAbsent("a", 1))
		assert.False(t, om.SetIfAbsent("a", 2))

		val, _ := om.Get("a")
		assert.Equal(t, 1, val)
		assert.True(t, om.Has("a"))
		assert.False(t, om.Has("b"))
	})

	t.Run("deletion", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		om.Delete("one")
		_, exists := om.Get("one")
		assert.False(t, exists)

		// Delete non-existent key should not panic
		om.Delete("non-existent")

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)
	})

	t.Run("count", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Equal(t, 0, om.Count())

		om.Set("one", 1)
		assert.Equal(t, 1, om.Count())

		om.Set("two", 2)
		assert.Equal(t, 2, om.Count())

		om.Delete("one")
		assert.Equal(t, 1, om.Count())
	})

	t.Run("keys and values", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("c", 3)
		om.Set("a", 1)
		om.Set("b", 2)

		assert.Equal(t, []string{"c", "a", "b"}, om.Keys())
		assert.Equal(t, []int{3, 1, 2}, om.Values())
	})

	t.Run("front to back iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		iter := om.Front()
		require.NotNil(t, iter)
		assert.Equal(t, "one", *iter.Key)
		assert.Equal(t, 1, iter.Value)

		iter = iter.Next()
		require.NotNil(t, iter)
		assert.Equal(t, "two", *iter.Key)
		assert.Equal(t, 2, iter.Value)

		iter = iter.Next()
		require.NotNil(t, iter)
		assert.Equal(t, "three", *iter.Key)

		iter = iter.Prev()
		require.NotNil(t, iter)
		assert.Equal(t, "two", *iter.Key)

		iter = iter.Next().Next()
		assert.Nil(t, iter)
	})

	t.Run("back to front iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		iter := om.Back()
		require.NotNil(t, iter)
		assert.Equal(t, "two", *iter.Key)

		iter = iter.Prev()
		require.NotNil(t, iter)
		assert.Equal(t, "one", *iter.Key)
		assert.Nil(t, iter.Prev())
	})

	t.Run("empty map", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())
		assert.Empty(t, om.Keys())
	})
}
