// Package history 实现按日期键持久化的历史存储：SQLite 为主后端，
// 兼容旧版单槽 JSON 文件并支持一次性迁移。加载永不致命：损坏或不可读
// 的后端退化为空映射。
// Package history implements the date-keyed persistence layer: SQLite as
// the primary backend, with the legacy single-slot JSON file supported and
// migrated once. Loading is never fatal: a corrupt or unreadable backing
// store degrades to an empty map.
package history

import (
	"time"

	"oracle/internal/model"
)

// Store 持久化接口。Put 以日期键整条覆盖（last-write-wins），同步落盘。
// Store is the persistence interface. Put replaces the whole entry for the
// key (last write wins) and persists synchronously.
type Store interface {
	// Load 启动时整体加载；失败退化为空映射而非报错
	// Load reads the whole map at startup; failures degrade to empty
	Load() (model.HistoryMap, error)

	// Put 覆盖指定日期的条目并同步持久化
	// Put replaces the entry for the date key and persists synchronously
	Put(dateKey string, entry model.HistoryEntry) error

	// Close 释放后端资源
	// Close releases backend resources
	Close() error
}

// DateKey 规范化的本地日期键，格式 YYYY-MM-DD
// DateKey is the canonical local-date key, formatted YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MemoryStore 纯内存实现，作为两级后端都不可用时的最后兜底
// MemoryStore is the in-memory last resort when neither durable backend
// can open
type MemoryStore struct {
	entries model.HistoryMap
}

// NewMemoryStore 创建内存存储
// NewMemoryStore creates an in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(model.HistoryMap)}
}

func (s *MemoryStore) Load() (model.HistoryMap, error) {
	out := make(model.HistoryMap, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Put(dateKey string, entry model.HistoryEntry) error {
	s.entries[dateKey] = entry
	return nil
}

func (s *MemoryStore) Close() error { return nil }
