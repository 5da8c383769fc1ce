package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	room       TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL DEFAULT '',
	tags       TEXT NOT NULL DEFAULT '',
	images     TEXT NOT NULL DEFAULT '',
	favorite   INTEGER NOT NULL DEFAULT 0,
	view_count INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_room ON items(room);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
CREATE INDEX IF NOT EXISTS idx_items_view_count ON items(view_count);
`

func (r *implRepository) migrate() error {
	_, err := r.db.Exec(schema)
	return err
}
