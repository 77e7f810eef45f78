package db

// postgresSchema is applied by EnsureSchema; every statement is idempotent.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS skill_progress (
	user_id    UUID NOT NULL,
	role_id    TEXT NOT NULL,
	skill_key  TEXT NOT NULL,
	skill_name TEXT NOT NULL,
	status     TEXT NOT NULL CHECK (status IN ('completed', 'in_progress', 'missing')),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, role_id, skill_key)
);

CREATE TABLE IF NOT EXISTS resume_scores (
	id         BIGSERIAL PRIMARY KEY,
	user_id    UUID NOT NULL,
	role_id    TEXT NOT NULL DEFAULT '',
	score      INTEGER NOT NULL CHECK (score BETWEEN 0 AND 100),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS resume_scores_user_idx ON resume_scores (user_id, created_at);

CREATE TABLE IF NOT EXISTS learning_plans (
	id            UUID PRIMARY KEY,
	user_id       UUID,
	role_id       TEXT NOT NULL,
	duration_days INTEGER NOT NULL,
	plan          JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS skill_progress (
	user_id    TEXT NOT NULL,
	role_id    TEXT NOT NULL,
	skill_key  TEXT NOT NULL,
	skill_name TEXT NOT NULL,
	status     TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	PRIMARY KEY (user_id, role_id, skill_key)
);

CREATE TABLE IF NOT EXISTS resume_scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT NOT NULL,
	role_id    TEXT NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS learning_plans (
	id            TEXT PRIMARY KEY,
	user_id       TEXT,
	role_id       TEXT NOT NULL,
	duration_days INTEGER NOT NULL,
	plan          TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
`
