// Package migrations contains all database migration files. Each file
// registers itself via init(), so importing this package (the CLI does) is
// what makes migrations runnable.
package migrations
