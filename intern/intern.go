/*
Copyright 2026 Uriq Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package intern provides an explicit string intern table. Unlike a global
// intern pool, tables are values the application creates, owns and scopes,
// so two subsystems can retain canonical strings with different lifetimes.
package intern

import (
	"strings"
	"sync"
)

// Table is a thread-safe intern table that uses sharding to reduce lock
// contention. Interning an already-present string returns the stored
// canonical instance; interning a new one stores a detached copy, so a
// substring of a large buffer never pins that buffer in memory.
type Table struct {
	shards     []*shard
	shardCount uint32
}

// shard is a single canonical-string map with its own mutex.
type shard struct {
	sync.RWMutex
	strings map[string]string
}

// Shards is the option type fixing the number of shards in a table.
type Shards uint

// defShards is the default number of shards to use.
const defShards Shards = 32

// New creates a new [Table].
// If no number of shards is specified, the default number of shards (32) is
// used. The number of shards can be specified using the [Shards] option and
// must be greater than 0.
func New(opts ...any) *Table {
	var shardsNum Shards
	for _, o := range opts {
		if v, ok := o.(Shards); ok {
			shardsNum = v
		}
	}

	if shardsNum == 0 {
		shardsNum = defShards
	}

	shards := make([]*shard, shardsNum)
	for i := range shards {
		shards[i] = &shard{
			strings: make(map[string]string),
		}
	}

	return &Table{
		shards:     shards,
		shardCount: uint32(shardsNum),
	}
}

func (t *Table) getShard(s string) *shard {
	// FNV-1a over the string bytes.
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	hash := uint32(offset32)
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= prime32
	}
	return t.shards[hash%t.shardCount]
}

// Intern returns the canonical instance of s, storing a detached copy on
// first sight. Under a race the first stored copy wins and every caller
// gets it.
func (t *Table) Intern(s string) string {
	shard := t.getShard(s)
	shard.RLock()
	c, ok := shard.strings[s]
	shard.RUnlock()
	if ok {
		return c
	}

	shard.Lock()
	defer shard.Unlock()
	if c, ok := shard.strings[s]; ok {
		return c
	}
	c = strings.Clone(s)
	shard.strings[c] = c
	return c
}

// Has reports whether s has been interned.
func (t *Table) Has(s string) bool {
	shard := t.getShard(s)
	shard.RLock()
	_, ok := shard.strings[s]
	shard.RUnlock()
	return ok
}

// Len returns the total number of distinct strings in the table.
func (t *Table) Len() int {
	n := 0
	for _, shard := range t.shards {
		shard.RLock()
		n += len(shard.strings)
		shard.RUnlock()
	}
	return n
}
