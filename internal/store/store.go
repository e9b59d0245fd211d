// Package store persists stance snapshots, operator performance, and the
// per-turn audit log in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/driftlab/stance-engine/internal/stance"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS stance_snapshots (
	id               TEXT PRIMARY KEY,
	conversation_id  TEXT NOT NULL,
	trigger          TEXT NOT NULL,
	stance_json      TEXT NOT NULL,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_conversation
ON stance_snapshots(conversation_id, created_at);

CREATE TABLE IF NOT EXISTS operator_performance (
	id                    INTEGER PRIMARY KEY AUTOINCREMENT,
	operator_name         TEXT NOT NULL,
	trigger_type          TEXT NOT NULL,
	transformation_score  INTEGER NOT NULL,
	coherence_score       INTEGER NOT NULL,
	drift_cost            INTEGER NOT NULL,
	created_at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_performance_operator
ON operator_performance(operator_name);

CREATE TABLE IF NOT EXISTS turn_log (
	id                    TEXT PRIMARY KEY,
	conversation_id       TEXT NOT NULL,
	message               TEXT NOT NULL,
	response              TEXT NOT NULL,
	triggers_json         TEXT NOT NULL,
	operators_json        TEXT NOT NULL,
	transformation_score  INTEGER NOT NULL,
	coherence_score       INTEGER NOT NULL,
	sentience_score       INTEGER NOT NULL,
	overall_score         INTEGER NOT NULL,
	created_at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turn_log_conversation
ON turn_log(conversation_id, created_at);
`

// #endregion schema

// #region store-struct
// Store manages the engine's persistence in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region snapshots

// SaveSnapshot persists the given stance and returns the stored row.
func (s *Store) SaveSnapshot(conversationID, triggerName string, st stance.Stance) (Snapshot, error) {
	stanceJSON, err := json.Marshal(st)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal stance: %w", err)
	}

	snap := Snapshot{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Trigger:        triggerName,
		Stance:         st,
		CreatedAt:      time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO stance_snapshots (id, conversation_id, trigger, stance_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.ConversationID, snap.Trigger, string(stanceJSON),
		snap.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns a conversation's most recent snapshots, newest first.
func (s *Store) ListSnapshots(conversationID string, limit int) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, conversation_id, trigger, stance_json, created_at
		 FROM stance_snapshots WHERE conversation_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var stanceJSON, createdStr string
		if err := rows.Scan(&snap.ID, &snap.ConversationID, &snap.Trigger, &stanceJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(stanceJSON), &snap.Stance); err != nil {
			return nil, fmt.Errorf("unmarshal stance: %w", err)
		}
		snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// LatestSnapshot returns the newest snapshot for a conversation, or nil.
func (s *Store) LatestSnapshot(conversationID string) (*Snapshot, error) {
	snaps, err := s.ListSnapshots(conversationID, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

// #endregion snapshots

// #region turn-log

// RecordTurn appends one completed turn to the audit log. A missing ID is
// filled in; the stored record is returned.
func (s *Store) RecordTurn(rec TurnRecord) (TurnRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	triggersJSON, err := json.Marshal(rec.Triggers)
	if err != nil {
		return TurnRecord{}, fmt.Errorf("marshal triggers: %w", err)
	}
	operatorsJSON, err := json.Marshal(rec.Operators)
	if err != nil {
		return TurnRecord{}, fmt.Errorf("marshal operators: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO turn_log
		 (id, conversation_id, message, response, triggers_json, operators_json,
		  transformation_score, coherence_score, sentience_score, overall_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ConversationID, rec.Message, rec.Response,
		string(triggersJSON), string(operatorsJSON),
		rec.Transformation, rec.Coherence, rec.Sentience, rec.Overall,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return TurnRecord{}, fmt.Errorf("insert turn: %w", err)
	}
	return rec, nil
}

// RecentTurns returns a conversation's most recent turns, newest first.
func (s *Store) RecentTurns(conversationID string, limit int) ([]TurnRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, conversation_id, message, response, triggers_json, operators_json,
		        transformation_score, coherence_score, sentience_score, overall_score, created_at
		 FROM turn_log WHERE conversation_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		conversationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var records []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var triggersJSON, operatorsJSON, createdStr string
		if err := rows.Scan(
			&rec.ID, &rec.ConversationID, &rec.Message, &rec.Response,
			&triggersJSON, &operatorsJSON,
			&rec.Transformation, &rec.Coherence, &rec.Sentience, &rec.Overall,
			&createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		if err := json.Unmarshal([]byte(triggersJSON), &rec.Triggers); err != nil {
			return nil, fmt.Errorf("unmarshal triggers: %w", err)
		}
		if err := json.Unmarshal([]byte(operatorsJSON), &rec.Operators); err != nil {
			return nil, fmt.Errorf("unmarshal operators: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion turn-log
