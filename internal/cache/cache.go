package cache

import (
	"container/list"
)

// LRU is a fixed-size least recently used cache. It is not safe for
// concurrent use.
type LRU[K comparable, V any] struct {
	size      int
	evictList *list.List
	items     map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns an LRU holding at most size entries. A size below one is
// treated as one.
func New[K comparable, V any](size int) *LRU[K, V] {
	return &LRU[K, V]{
		size:      max(size, 1),
		evictList: list.New(),
		items:     make(map[K]*list.Element),
	}
}

func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry[K, V]).value, true
	}
	return
}

func (c *LRU[K, V]) Put(key K, value V) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry[K, V]).value = value
		return
	}

	ele := c.evictList.PushFront(&entry[K, V]{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Purge drops every entry.
func (c *LRU[K, V]) Purge() {
	c.evictList.Init()
	clear(c.items)
}

func (c *LRU[K, V]) Len() int {
	return c.evictList.Len()
}

func (c *LRU[K, V]) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.evictList.Remove(ele)
		delete(c.items, ele.Value.(*entry[K, V]).key)
	}
}
