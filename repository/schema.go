package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaTables is applied in order; later tables reference earlier ones
var schemaTables = []struct {
	name string
	sql  string
}{
	{
		name: "users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name VARCHAR(255) NOT NULL DEFAULT '',
    preferred_language VARCHAR(8) NOT NULL DEFAULT 'en',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		name: "files",
		sql: `
CREATE TABLE IF NOT EXISTS files (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID REFERENCES users(id) ON DELETE SET NULL,
    filename TEXT NOT NULL,
    mime_type VARCHAR(255) NOT NULL,
    size BIGINT NOT NULL,
    storage_path TEXT NOT NULL,
    checksum CHAR(64) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		name: "documents",
		sql: `
CREATE TABLE IF NOT EXISTS documents (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID REFERENCES users(id) ON DELETE CASCADE,
    file_id UUID REFERENCES files(id) ON DELETE SET NULL,
    name TEXT NOT NULL,
    document_type VARCHAR(100) NOT NULL,
    mime_type VARCHAR(255) NOT NULL,
    size BIGINT NOT NULL,
    content TEXT NOT NULL DEFAULT '',
    checksum CHAR(64) NOT NULL,
    language VARCHAR(8) NOT NULL DEFAULT 'en',
    -- NULL until the analysis job completes
    analysis JSONB,
    upload_date TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp(),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		name: "analysis_jobs",
		sql: `
CREATE TABLE IF NOT EXISTS analysis_jobs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    status VARCHAR(20) NOT NULL CHECK (status IN ('pending', 'in_progress', 'completed', 'failed')),
    current_step TEXT,
    steps JSONB NOT NULL DEFAULT '[]'::jsonb,
    error_message TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ
);`,
	},
	{
		name: "chat_messages",
		sql: `
CREATE TABLE IF NOT EXISTS chat_messages (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    sender VARCHAR(8) NOT NULL CHECK (sender IN ('user', 'ai')),
    category VARCHAR(50) NOT NULL DEFAULT '',
    text TEXT NOT NULL,
    language VARCHAR(8) NOT NULL DEFAULT 'en',
    created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);`,
	},
}

var schemaIndexes = []struct {
	name string
	sql  string
}{
	{name: "Document history by user", sql: "CREATE INDEX IF NOT EXISTS idx_documents_user_upload ON documents(user_id, upload_date DESC);"},
	{name: "Document checksum lookup", sql: "CREATE INDEX IF NOT EXISTS idx_documents_checksum ON documents(checksum);"},
	{name: "Jobs by document", sql: "CREATE INDEX IF NOT EXISTS idx_analysis_jobs_document ON analysis_jobs(document_id, created_at DESC);"},
	{name: "Chat log by document", sql: "CREATE INDEX IF NOT EXISTS idx_chat_messages_document ON chat_messages(document_id, created_at);"},
	{name: "Analysis risk level", sql: "CREATE INDEX IF NOT EXISTS idx_documents_risk ON documents((analysis->>'risk_level')) WHERE analysis IS NOT NULL;"},
}

// Migrate creates every table and index. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, table := range schemaTables {
		if _, err := db.Exec(ctx, table.sql); err != nil {
			return fmt.Errorf("failed to create %s table: %w", table.name, err)
		}
		log.Printf("✓ Created %s table", table.name)
	}

	for _, idx := range schemaIndexes {
		if _, err := db.Exec(ctx, idx.sql); err != nil {
			log.Printf("Warning: Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("✓ Created index: %s", idx.name)
		}
	}
	return nil
}

// Tables lists the managed tables in creation order
func Tables() []string {
	names := make([]string, len(schemaTables))
	for i, t := range schemaTables {
		names[i] = t.name
	}
	return names
}
