package report

const schemaSQL = `
-- Pages table holds one row per visited URL, in visitation order
CREATE TABLE IF NOT EXISTS pages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    position INTEGER NOT NULL,
    url TEXT UNIQUE NOT NULL,
    title TEXT,
    content TEXT,
    status_code INTEGER NOT NULL,
    link_count INTEGER NOT NULL DEFAULT 0,
    crawled_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pages_url ON pages(url);
CREATE INDEX IF NOT EXISTS idx_pages_status_code ON pages(status_code);

-- Links table stores the outbound links of each page in document order
CREATE TABLE IF NOT EXISTS links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_url TEXT NOT NULL,
    target_url TEXT NOT NULL,
    position INTEGER NOT NULL,
    UNIQUE(source_url, position)
);

CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_url);
CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);

-- View separating degraded records for post-run inspection
CREATE VIEW IF NOT EXISTS failed_pages AS
SELECT position, url, content AS error_message
FROM pages
WHERE status_code = 0;
`
