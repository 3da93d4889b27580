package db

// SchemaSQL is the complete schema for fresh studio installs.
//
// This is the SINGLE SOURCE OF TRUTH for the store layout. All tests use it
// via GetSchemaSQL() so test schemas cannot drift from production: if a
// repository references a column that does not exist here, its test fails
// immediately with "no such column".
const SchemaSQL = `
-- Leads (captured inquiries: bookings, quotations, contact requests)
CREATE TABLE IF NOT EXISTS leads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL CHECK(type IN ('booking', 'quotation', 'contact')),
	contact_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	address TEXT,
	postal_code TEXT,
	property_type TEXT,
	selected_services TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Notifications (audit trail of dispatched studio alerts)
CREATE TABLE IF NOT EXISTS notifications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recipient TEXT NOT NULL,
	subject TEXT NOT NULL,
	message_body TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('sent', 'failed')),
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- System logs (store-level events: exports, purges, integrity checks)
CREATE TABLE IF NOT EXISTS system_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event TEXT NOT NULL,
	details TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
