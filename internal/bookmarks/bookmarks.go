// Package bookmarks tracks which article ids the user has saved.
//
// The set is keyed purely by id string. Ids are derived from link and
// batch position, so a bookmark can detach when the next refresh
// shuffles positions; that mirrors the persistence model this tool
// inherited and is left alone.
package bookmarks

import (
	"encoding/json"
	"log"
	"sort"
)

// metaKey is the single key the serialized id list lives under.
const metaKey = "bookmarks"

// KV is the persistence collaborator: a string key-value store,
// synchronous from the caller's point of view.
type KV interface {
	Meta(key string) (string, error)
	SetMeta(key, value string) error
}

// Set is a bookmark membership set.
type Set map[string]bool

// Has reports whether id is bookmarked.
func (s Set) Has(id string) bool { return s[id] }

// IDs returns the member ids in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store persists a bookmark set through a KV collaborator.
type Store struct {
	kv  KV
	set Set
}

// Load reads the persisted set. Missing or malformed data degrades to
// an empty set with a logged warning; it never fails the caller.
func Load(kv KV) *Store {
	s := &Store{kv: kv, set: Set{}}

	raw, err := kv.Meta(metaKey)
	if err != nil || raw == "" {
		return s
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("[warn] discarding malformed bookmark data: %v", err)
		return s
	}
	for _, id := range ids {
		s.set[id] = true
	}
	return s
}

// Set returns the current membership set.
func (s *Store) Set() Set {
	out := make(Set, len(s.set))
	for id := range s.set {
		out[id] = true
	}
	return out
}

// Toggle adds id if absent, removes it if present, and persists the
// new set before returning it. The write is best-effort: a failed
// write is logged and the in-memory set still advances.
func (s *Store) Toggle(id string) Set {
	if s.set[id] {
		delete(s.set, id)
	} else {
		s.set[id] = true
	}

	data, _ := json.Marshal(s.set.IDs())
	if err := s.kv.SetMeta(metaKey, string(data)); err != nil {
		log.Printf("[warn] persisting bookmarks: %v", err)
	}
	return s.Set()
}
