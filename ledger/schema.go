// ledger/schema.go
package ledger

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	pair TEXT NOT NULL,
	side TEXT NOT NULL DEFAULT '',
	entry REAL NOT NULL DEFAULT 0,
	exit REAL NOT NULL DEFAULT 0,
	size REAL NOT NULL DEFAULT 0,
	leverage REAL NOT NULL DEFAULT 1,
	take_profit REAL,
	stop_loss REAL,
	notes TEXT NOT NULL DEFAULT '',
	screenshot TEXT NOT NULL DEFAULT '',
	profit REAL NOT NULL DEFAULT 0,
	roi REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_trades_pair ON trades(pair);
CREATE INDEX IF NOT EXISTS idx_trades_profit ON trades(profit);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
