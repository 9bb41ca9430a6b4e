package storage

//
// This file implements Database interface based on map[string][]byte.
//

import (
	"sort"
	"strings"
	"sync"

	"github.com/coschain/cos-wallet/common"
)

type MemoryDatabase struct {
	db   map[string][]byte
	lock sync.RWMutex
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{db: make(map[string][]byte)}
}

func (db *MemoryDatabase) Close() error {
	return nil
}

func (db *MemoryDatabase) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	_, ok := db.db[string(key)]
	return ok, nil
}

func (db *MemoryDatabase) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if value, ok := db.db[string(key)]; ok {
		return common.CopyBytes(value), nil
	}
	return nil, ErrNotFound
}

func (db *MemoryDatabase) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = common.CopyBytes(value)
	return nil
}

func (db *MemoryDatabase) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

// Iterate works on a snapshot, so callback may write to the database.
func (db *MemoryDatabase) Iterate(prefix []byte, callback func(key, value []byte) bool) error {
	db.lock.RLock()
	keys := []string{}
	data := make(map[string][]byte)
	for k, v := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
			data[k] = common.CopyBytes(v)
		}
	}
	db.lock.RUnlock()

	sort.Strings(keys)
	for _, k := range keys {
		if !callback([]byte(k), data[k]) {
			break
		}
	}
	return nil
}

func (db *MemoryDatabase) NewBatch() Batch {
	return &memoryDatabaseBatch{db: db}
}

// defines a database writing operation (put or delete)
type writeOp struct {
	Key, Value []byte
	Del        bool
}

type memoryDatabaseBatch struct {
	db *MemoryDatabase
	op []writeOp
}

// execute all batched operations
func (b *memoryDatabaseBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.op {
		if kv.Del {
			delete(b.db.db, string(kv.Key))
		} else {
			b.db.db[string(kv.Key)] = kv.Value
		}
	}
	return nil
}

func (b *memoryDatabaseBatch) Put(key []byte, value []byte) error {
	b.op = append(b.op, writeOp{common.CopyBytes(key), common.CopyBytes(value), false})
	return nil
}

func (b *memoryDatabaseBatch) Delete(key []byte) error {
	b.op = append(b.op, writeOp{common.CopyBytes(key), nil, true})
	return nil
}
