package entity

// Blob is a single key/value entry. The whole appointment list lives in
// one of these.
type Blob struct {
	Key       string `gorm:"primaryKey;column:blob_key"`
	Value     []byte `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:milli"`
}
