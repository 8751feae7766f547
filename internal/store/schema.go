package store

// Column names follow the pool bot that shares this database.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	discordid TEXT NOT NULL UNIQUE,
	avatar TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS poolers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	userid INTEGER NOT NULL UNIQUE REFERENCES users(id),
	name TEXT NOT NULL,
	favteam TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS picks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	poolerid INTEGER NOT NULL REFERENCES poolers(id),
	season INTEGER NOT NULL,
	week INTEGER NOT NULL,
	pickstring TEXT,
	featuredpick TEXT,
	scorecache INTEGER,
	UNIQUE (poolerid, season, week)
);

CREATE TABLE IF NOT EXISTS features (
	season INTEGER NOT NULL,
	week INTEGER NOT NULL,
	matchid TEXT NOT NULL,
	target REAL NOT NULL,
	PRIMARY KEY (season, week)
);

CREATE TABLE IF NOT EXISTS capsules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	poolerid INTEGER NOT NULL REFERENCES poolers(id),
	season INTEGER NOT NULL,
	winafcn TEXT,
	winafcs TEXT,
	winafce TEXT,
	winafcw TEXT,
	winnfcn TEXT,
	winnfcs TEXT,
	winnfce TEXT,
	winnfcw TEXT,
	afcwildcards TEXT,
	nfcwildcards TEXT,
	UNIQUE (poolerid, season)
);
`
