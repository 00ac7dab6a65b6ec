package db_models

// KVEntry is one raw key/value pair of the postgres-backed store.
type KVEntry struct {
	BaseModel
	EntryKey string `gorm:"primaryKey;size:255"`
	Value    []byte `gorm:"type:bytea;not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
