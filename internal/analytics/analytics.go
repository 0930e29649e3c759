// Package analytics records privacy-conscious visitor metrics and link
// clicks in SQLite. Raw IP addresses are never stored: each one is hashed
// with a per-process salt before it reaches the database.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/marcosmenezes/portfolio/internal/logger"
)

// Visit is one tracked page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat is the click counter of one outbound link.
type LinkStat struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Clicks      int64     `json:"clicks"`
	LastClicked time.Time `json:"last_clicked"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	TotalLinks       int64      `json:"total_links"`
	TotalClicks      int64      `json:"total_clicks"`
	TopLinks         []LinkStat `json:"top_links"`
	RecentVisitors   []Visit    `json:"recent_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
}

// Store is the analytics database.
type Store struct {
	db   *sql.DB
	salt string
	log  *logger.Logger
	now  func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp);
CREATE TABLE IF NOT EXISTS link_clicks (
	link_key TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0,
	last_clicked INTEGER NOT NULL
);`

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open analytics database: %s", path)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent tracking.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create analytics tables")
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info("Privacy: visitor tracking enabled with hashed IP addresses")
	return &Store{db: db, salt: salt, log: log, now: time.Now}, nil
}

func newSalt() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate hashing salt")
	}
	return hex.EncodeToString(buf), nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a stable, truncated hash of ip for this process.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return errors.Wrap(err, "failed to record visit")
	}
	return nil
}

// RecordLinkClick increments the counter for key, remembering the URL it
// last resolved to.
func (s *Store) RecordLinkClick(ctx context.Context, key, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (link_key, url, clicks, last_clicked) VALUES (?, ?, 1, ?)
		ON CONFLICT(link_key) DO UPDATE SET
			clicks = clicks + 1,
			url = excluded.url,
			last_clicked = excluded.last_clicked`,
		key, url, s.now().Unix())
	if err != nil {
		return errors.Wrapf(err, "failed to record click on %s", key)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up visitor data")
	}
	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		s.log.Infof("Privacy cleanup: removed %d visitor records older than %s", deleted, retention)
	}
	return deleted, nil
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counters := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{query: `SELECT COUNT(*) FROM visitors`, dest: &stats.TotalVisitors},
		{query: `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, dest: &stats.UniqueVisitors},
		{query: `SELECT COUNT(*) FROM link_clicks`, dest: &stats.TotalLinks},
		{query: `SELECT COALESCE(SUM(clicks), 0) FROM link_clicks`, dest: &stats.TotalClicks},
		{query: `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, args: []any{startOfDay.Unix()}, dest: &stats.VisitorsToday},
		{query: `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, args: []any{now.Add(-7 * 24 * time.Hour).Unix()}, dest: &stats.VisitorsThisWeek},
	}
	for _, c := range counters {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, errors.Wrap(err, "failed to load statistics")
		}
	}

	var err error
	stats.TopLinks, err = s.TopLinks(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TopLinks returns the most clicked links first.
func (s *Store) TopLinks(ctx context.Context, limit int) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT link_key, url, clicks, last_clicked
		FROM link_clicks
		ORDER BY clicks DESC, last_clicked DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load link clicks")
	}
	defer rows.Close()

	var links []LinkStat
	for rows.Next() {
		var (
			link LinkStat
			last int64
		)
		if err := rows.Scan(&link.Key, &link.URL, &link.Clicks, &last); err != nil {
			return nil, errors.Wrap(err, "failed to read link clicks")
		}
		link.LastClicked = time.Unix(last, 0).UTC()
		links = append(links, link)
	}
	return links, rows.Err()
}

// RecentVisitors returns the latest visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load visitors")
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v  Visit
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "failed to read visitors")
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
