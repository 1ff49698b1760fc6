package store

// Schema is the SQL schema of a GFA index. Records are kept as their
// canonical line so they can be parsed back, with the names that are
// looked up pulled out into columns
const Schema = `
CREATE TABLE IF NOT EXISTS files (
    id        TEXT PRIMARY KEY,
    path      TEXT NOT NULL,
    version   TEXT NULL,
    loaded_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS segments (
    file_id  TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
    name     TEXT NOT NULL,
    length   INTEGER NOT NULL,
    line     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS links (
    file_id     TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
    from_name   TEXT NOT NULL,
    from_orient TEXT NOT NULL CHECK(from_orient IN ('+', '-')),
    to_name     TEXT NOT NULL,
    to_orient   TEXT NOT NULL CHECK(to_orient IN ('+', '-')),
    line        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS containments (
    file_id        TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
    container_name TEXT NOT NULL,
    contained_name TEXT NOT NULL,
    pos            INTEGER NOT NULL,
    line           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS paths (
    file_id TEXT NOT NULL REFERENCES files(id) ON DELETE CASCADE,
    name    TEXT NOT NULL,
    steps   INTEGER NOT NULL,
    line    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_segments_name ON segments(name);
CREATE INDEX IF NOT EXISTS idx_links_from ON links(from_name);
CREATE INDEX IF NOT EXISTS idx_links_to ON links(to_name);
CREATE INDEX IF NOT EXISTS idx_containments_container ON containments(container_name);
CREATE INDEX IF NOT EXISTS idx_paths_name ON paths(name);
`
