package store

import (
	"github.com/patrickmn/go-cache"
)

// DocumentStore holds the extracted plain text of uploaded documents, keyed
// by document id. Entries never expire on their own; the reaper removes them
// together with the owning session.
type DocumentStore struct {
	cache *cache.Cache
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (d *DocumentStore) Put(id, text string) {
	d.cache.Set(id, text, cache.NoExpiration)
}

func (d *DocumentStore) Get(id string) (string, bool) {
	if x, found := d.cache.Get(id); found {
		return x.(string), true
	}
	return "", false
}

func (d *DocumentStore) Delete(id string) {
	d.cache.Delete(id)
}

func (d *DocumentStore) Len() int {
	return d.cache.ItemCount()
}
