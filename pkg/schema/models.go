// Package schema provides the database model for the persisted
// mapping store.
package schema

// IDMapping persists one old→new identifier association.
//
// OldID is the primary key, which gives insert-if-absent semantics via
// ON CONFLICT DO NOTHING: the first write wins and re-running
// generation never reassigns an existing mapping. NewID carries a
// secondary index for reverse lookups during verification; its
// uniqueness is best-effort and not enforced.
type IDMapping struct {
	// OldID is the legacy fixed-width textual identifier.
	// The column is sized generously; the configured identifier width
	// is validated in code, not by the schema.
	OldID string `gorm:"column:old_id;type:varchar(64);primaryKey"`

	// NewID is the assigned 64-bit numeric identifier.
	NewID uint64 `gorm:"column:new_id;type:bigint;not null;index"`
}

// TableName returns the PostgreSQL table name for this model.
func (IDMapping) TableName() string {
	return "id_mappings"
}
