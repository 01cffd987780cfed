package history

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dbFileName     = "oracle.db"
	legacyFileName = "oracle_history.json"
)

// Open 打开历史存储：优先 SQLite 并一次性迁移旧版 JSON 槽；SQLite 不可用
// 时退回 JSON 槽；两者都失败时退回内存存储。永远返回可用的 Store，
// 第二个返回值仅描述发生的降级，供调用方提示，不代表失败。
// Open opens the history store: SQLite first with a one-shot migration of
// the legacy JSON slot; the JSON slot when SQLite cannot open; an in-memory
// store when both fail. A usable Store is always returned; the second value
// only describes any degradation for the caller to report.
func Open(baseDir string) (Store, error) {
	dbPath := filepath.Join(baseDir, dbFileName)
	legacyPath := filepath.Join(baseDir, legacyFileName)

	sqlStore, err := NewSQLiteStore(dbPath)
	if err == nil {
		migrateLegacy(sqlStore, legacyPath)
		return sqlStore, nil
	}
	sqliteErr := err

	jsonStore := NewJSONStore(legacyPath)
	if _, err := jsonStore.Load(); err == nil {
		if probeWritable(legacyPath) {
			return jsonStore, fmt.Errorf("sqlite unavailable, using json slot: %w", sqliteErr)
		}
	}

	return NewMemoryStore(), fmt.Errorf("durable storage unavailable, history will not persist: %w", sqliteErr)
}

// migrateLegacy 将旧版 JSON 槽迁入 SQLite（仅当 SQLite 为空时），
// 成功后把旧文件改名为 .bak。任何一步失败都静默放弃，下次再试。
// migrateLegacy imports the legacy JSON slot into SQLite (only when SQLite
// is empty) and renames the old file to .bak on success. Any failure
// abandons the migration silently; it is retried on the next start.
func migrateLegacy(dst *SQLiteStore, legacyPath string) {
	if _, err := os.Stat(legacyPath); err != nil {
		return
	}
	existing, err := dst.Load()
	if err != nil || len(existing) > 0 {
		return
	}

	legacy := NewJSONStore(legacyPath)
	entries, err := legacy.Load()
	if err != nil || len(entries) == 0 {
		return
	}
	for date, entry := range entries {
		if err := dst.Put(date, entry); err != nil {
			return
		}
	}
	_ = os.Rename(legacyPath, legacyPath+".bak")
}

func probeWritable(path string) bool {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}
