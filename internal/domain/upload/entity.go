package upload

import "time"

// UploadedImage is the metadata row recorded for every image written to the
// upload directory. Only the generated filename and the client-supplied name
// are persisted; the bytes live on local disk and are served statically.
type UploadedImage struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Filename     string    `gorm:"column:filename;not null" json:"filename"`
	OriginalName string    `gorm:"column:original_name;not null" json:"original_name"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
}

func (UploadedImage) TableName() string { return "uploaded_images" }
