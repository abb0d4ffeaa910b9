package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL,
    phone          TEXT,
    city           TEXT,
    industry       TEXT,
    status         TEXT NOT NULL,
    monthly_value  INTEGER NOT NULL DEFAULT 0,
    registered     TEXT,
    last_contact   TEXT,
    website        TEXT,
    services       TEXT,
    notes          TEXT
);

CREATE TABLE IF NOT EXISTS quotes (
    id               TEXT PRIMARY KEY,
    client           TEXT NOT NULL,
    service          TEXT,
    amount           INTEGER NOT NULL,
    status           TEXT NOT NULL,
    issued           TEXT,
    expires          TEXT,
    probability      INTEGER NOT NULL DEFAULT 0,
    owner            TEXT,
    notes            TEXT,
    rejection_reason TEXT,
    alternative      TEXT,
    reconversion     INTEGER NOT NULL DEFAULT 0,
    recontact        TEXT
);

CREATE TABLE IF NOT EXISTS projects (
    id              TEXT PRIMARY KEY,
    client          TEXT NOT NULL,
    name            TEXT NOT NULL,
    status          TEXT NOT NULL,
    progress        INTEGER NOT NULL DEFAULT 0,
    started         TEXT,
    delivery        TEXT,
    value           INTEGER NOT NULL DEFAULT 0,
    estimated_hours INTEGER NOT NULL DEFAULT 0,
    worked_hours    INTEGER NOT NULL DEFAULT 0,
    owner           TEXT
);

CREATE TABLE IF NOT EXISTS activities (
    id          TEXT PRIMARY KEY,
    date        TEXT,
    type        TEXT NOT NULL,
    client      TEXT NOT NULL,
    description TEXT,
    status      TEXT NOT NULL,
    next_action TEXT
);

CREATE INDEX IF NOT EXISTS idx_clients_status ON clients(status);
CREATE INDEX IF NOT EXISTS idx_quotes_status ON quotes(status);
CREATE INDEX IF NOT EXISTS idx_activities_client ON activities(client);
`
