package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	pkgerr "github.com/pkg/errors"
)

const createJournalTable = `
CREATE TABLE IF NOT EXISTS stock_notifications (
	seq        BIGINT        NOT NULL AUTO_INCREMENT PRIMARY KEY,
	id         CHAR(36)      NOT NULL UNIQUE,
	store      VARCHAR(255)  NOT NULL,
	message    VARCHAR(1024) NOT NULL,
	created_at DATETIME(6)   NOT NULL,
	INDEX idx_stock_notifications_store (store, seq)
)`

// JournalEntry is one stored notification.
type JournalEntry struct {
	ID        string
	Store     string
	Message   string
	CreatedAt time.Time
}

// MySQLJournal is a listener appending every notification to a table. It is
// an audit trail only; the stock is never rebuilt from it.
type MySQLJournal struct {
	db    *sql.DB
	store string
	now   func() time.Time
}

func NewMySQLJournal(db *sql.DB, store string) *MySQLJournal {
	return &MySQLJournal{
		db:    db,
		store: store,
		now:   time.Now,
	}
}

func (m *MySQLJournal) EnsureSchema(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createJournalTable); err != nil {
		return pkgerr.Wrap(err, "create stock_notifications")
	}
	return nil
}

func (m *MySQLJournal) Receive(ctx context.Context, message string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO stock_notifications (id, store, message, created_at)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(), m.store, message, m.now().UTC(),
	)
	if err != nil {
		return pkgerr.Wrap(err, "insert notification")
	}
	return nil
}

// Entries returns the journal of the configured store in insertion order.
func (m *MySQLJournal) Entries(ctx context.Context) ([]JournalEntry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, store, message, created_at
		FROM stock_notifications WHERE store = ?
		ORDER BY seq`, m.store,
	)
	if err != nil {
		return nil, pkgerr.Wrap(err, "query notifications")
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Store, &e.Message, &e.CreatedAt); err != nil {
			return nil, pkgerr.Wrap(err, "scan notification")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerr.Wrap(err, "iterate notifications")
	}

	return entries, nil
}

// Purge deletes the journal of the configured store.
func (m *MySQLJournal) Purge(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM stock_notifications WHERE store = ?`, m.store); err != nil {
		return pkgerr.Wrap(err, "purge notifications")
	}
	return nil
}
