package models

// AssetState is the lifecycle position of an uploaded file.
type AssetState string

const (
	// AssetPending is stored on disk but not yet referenced by a saved record.
	AssetPending AssetState = "pending"
	// AssetCommitted is referenced by exactly one settings field.
	AssetCommitted AssetState = "committed"
	// AssetOrphaned was replaced or removed and waits for deletion.
	AssetOrphaned AssetState = "orphaned"
)

// UploadedAsset tracks a file written to the upload backend.
type UploadedAsset struct {
	BaseModel
	OrgMail     string     `gorm:"type:varchar(191);index;not null" json:"orgmail"`
	Key         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"key"`
	URL         string     `gorm:"type:varchar(500);index;not null" json:"url"`
	Field       string     `gorm:"type:varchar(100)" json:"field"`
	ContentType string     `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64      `json:"size"`
	State       AssetState `gorm:"type:varchar(20);index;not null;default:'pending'" json:"state"`
}
