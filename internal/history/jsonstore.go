package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"oracle/internal/model"
)

// JSONStore 旧版单槽存储：一个文件保存整个序列化的 HistoryMap，
// 每次写入整体重写。保留它以兼容旧数据并作为 SQLite 不可用时的后备。
// JSONStore is the legacy single-slot store: one file holding the whole
// serialized HistoryMap, rewritten whole on every put. Kept for legacy data
// and as the fallback when SQLite cannot open.
type JSONStore struct {
	path    string
	entries model.HistoryMap
}

// NewJSONStore 创建 JSON 槽存储
// NewJSONStore creates the JSON slot store
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path, entries: make(model.HistoryMap)}
}

// Load 整体加载。文件缺失、不可读或内容损坏都退化为空映射，绝不致命。
// Load reads the whole slot. A missing, unreadable, or corrupt file
// degrades to an empty map, never a fatal error.
func (s *JSONStore) Load() (model.HistoryMap, error) {
	s.entries = make(model.HistoryMap)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.snapshot(), nil
	}
	var entries model.HistoryMap
	if err := json.Unmarshal(data, &entries); err != nil {
		return s.snapshot(), nil
	}
	if entries != nil {
		s.entries = entries
	}
	return s.snapshot(), nil
}

// Put 覆盖条目并整体重写槽文件
// Put replaces the entry and rewrites the whole slot file
func (s *JSONStore) Put(dateKey string, entry model.HistoryEntry) error {
	if dateKey == "" {
		return fmt.Errorf("date key is empty")
	}
	s.entries[dateKey] = entry

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history slot: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) snapshot() model.HistoryMap {
	out := make(model.HistoryMap, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}
