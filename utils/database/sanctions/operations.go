package sanctions

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"medieval-moderator/model"
)

// Add inserts a new sanction row and returns its id.
func Add(db *sqlx.DB, s model.Sanction) (int64, error) {
	table, err := tableFor(s.Kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`INSERT INTO %s (guild_id, user_id, start_time, end_time, reason, active)
		VALUES (:guild_id, :user_id, :start_time, :end_time, :reason, 1)`, table)
	result, err := db.NamedExec(query, s)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s sanction: %w", s.Kind, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// GetByID retrieves one sanction by id within a guild. Returns nil when no
// such row exists.
func GetByID(db *sqlx.DB, kind model.SanctionKind, id int64, guildID string) (*model.Sanction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var s model.Sanction
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = ? AND guild_id = ?", table)
	if err := db.Get(&s, query, id, guildID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s sanction %d: %w", kind, id, err)
	}
	s.Kind = kind
	return &s, nil
}

// ActiveByTarget retrieves the active sanction for a target, or nil. The
// lifecycle invariant keeps at most one active row per (guild, target).
func ActiveByTarget(db *sqlx.DB, kind model.SanctionKind, guildID, userID string) (*model.Sanction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var s model.Sanction
	query := fmt.Sprintf("SELECT * FROM %s WHERE guild_id = ? AND user_id = ? AND active = 1 LIMIT 1", table)
	if err := db.Get(&s, query, guildID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active %s sanction for user %s in guild %s: %w", kind, userID, guildID, err)
	}
	s.Kind = kind
	return &s, nil
}

// ListActive retrieves the active sanctions of one kind in a guild, in
// creation order.
func ListActive(db *sqlx.DB, kind model.SanctionKind, guildID string) ([]model.Sanction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var rows []model.Sanction
	query := fmt.Sprintf("SELECT * FROM %s WHERE guild_id = ? AND active = 1 ORDER BY id ASC", table)
	if err := db.Select(&rows, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to list active %s sanctions for guild %s: %w", kind, guildID, err)
	}
	for i := range rows {
		rows[i].Kind = kind
	}
	return rows, nil
}

// ListAllActive retrieves every active sanction across all guilds and kinds
// in a single batch, for the sweeper.
func ListAllActive(db *sqlx.DB) ([]model.Sanction, error) {
	var all []model.Sanction
	for kind, table := range kindTables {
		var rows []model.Sanction
		query := fmt.Sprintf("SELECT * FROM %s WHERE active = 1 ORDER BY id ASC", table)
		if err := db.Select(&rows, query); err != nil {
			return nil, fmt.Errorf("failed to list active sanctions from %s: %w", table, err)
		}
		for i := range rows {
			rows[i].Kind = kind
		}
		all = append(all, rows...)
	}
	return all, nil
}

// Deactivate flips active to false. The WHERE clause guards on active = 1 so
// the terminal transition happens at most once; the return value reports
// whether this call performed it.
func Deactivate(db *sqlx.DB, kind model.SanctionKind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf("UPDATE %s SET active = 0 WHERE id = ? AND active = 1", table)
	result, err := db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate %s sanction %d: %w", kind, id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected for %s sanction %d: %w", kind, id, err)
	}
	return affected > 0, nil
}

// IsActive reports whether the sanction with the given id is still active.
func IsActive(db *sqlx.DB, kind model.SanctionKind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var active bool
	query := fmt.Sprintf("SELECT active FROM %s WHERE id = ?", table)
	if err := db.Get(&active, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check %s sanction %d: %w", kind, id, err)
	}
	return active, nil
}
