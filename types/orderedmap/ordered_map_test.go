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

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
		assert.True(t, om.Has("one"))
		assert.False(t, om.Has("four"))
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("a", 3)

		assert.Equal(t, []string{"a", "b"}, om.Keys())
		assert.Equal(t, []int{3, 2}, om.Values())
	})

	t.Run("deletion", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		om.Delete("one")
		_, exists := om.Get("one")
		assert.False(t, exists)

		om.Delete("non-existent")

		assert.Equal(t, 1, om.Count())
		assert.Equal(t, []string{"two"}, om.Keys())
	})

	t.Run("forward iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		var keys []string
		var values []int
		for it := om.Front(); it != nil; it = it.Next() {
			keys = append(keys, it.Key())
			values = append(values, it.Value())
		}
		assert.Equal(t, []string{"one", "two", "three"}, keys)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("backward iteration", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		it := om.Back()
		require.NotNil(t, it)
		var keys []string
		for ; it != nil; it = it.Next() {
			keys = append(keys, it.Key())
		}
		assert.Equal(t, []string{"three", "two", "one"}, keys)
	})

	t.Run("empty map", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		assert.Nil(t, om.Front())
		assert.Nil(t, om.Back())
		assert.Empty(t, om.Keys())

		var nilMap *OrderedMap[string, int]
		assert.Equal(t, 0, nilMap.Count())
		assert.Nil(t, nilMap.Front())
	})
}
