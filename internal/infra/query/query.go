// Package query contains the SQL statements backing the write repositories
// and read stores. Every method takes a db.DBTX so the same statement runs
// against the pool or inside a transaction.
package query

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
