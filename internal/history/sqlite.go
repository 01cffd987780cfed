package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"oracle/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore 基于 SQLite (WAL 模式) 的主存储：一行一个日历日，
// 条目本体以 JSON 存列
// SQLiteStore is the primary store on SQLite with WAL mode: one row per
// calendar day, the entry body stored as a JSON column
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore 创建并初始化 SQLite 数据库
// NewSQLiteStore creates and initializes the SQLite database
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// 启用 WAL 模式和优化 PRAGMA / Enable WAL and performance PRAGMAs
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	store := &SQLiteStore{db: db, path: dbPath}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		date       TEXT PRIMARY KEY,
		entry      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load 读取全部条目。单行损坏只跳过该行，不中断加载。
// Load reads all entries. A corrupt row is skipped, never aborting the load.
func (s *SQLiteStore) Load() (model.HistoryMap, error) {
	rows, err := s.db.Query(`SELECT date, entry FROM history`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make(model.HistoryMap)
	for rows.Next() {
		var date, raw string
		if err := rows.Scan(&date, &raw); err != nil {
			continue
		}
		var entry model.HistoryEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		entries[date] = entry
	}
	return entries, rows.Err()
}

// Put 以日期键 upsert 整条快照
// Put upserts the whole snapshot under the date key
func (s *SQLiteStore) Put(dateKey string, entry model.HistoryEntry) error {
	dateKey = strings.TrimSpace(dateKey)
	if dateKey == "" {
		return fmt.Errorf("date key is empty")
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO history (date, entry, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET entry=excluded.entry, updated_at=excluded.updated_at`,
		dateKey, string(raw), nowUTC())
	if err != nil {
		return fmt.Errorf("upsert history %s: %w", dateKey, err)
	}
	return nil
}

// Close 关闭数据库连接 / Close the database connection
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
