package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind classifies an uploaded proof file. Image and video uploads become
// proof-bundle media items; receipts and invoices back the financial evidence
// lists.
type MediaKind string

const (
	MediaKindImage   MediaKind = "image"
	MediaKindVideo   MediaKind = "video"
	MediaKindReceipt MediaKind = "receipt"
	MediaKindInvoice MediaKind = "invoice"
)

func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindImage, MediaKindVideo, MediaKindReceipt, MediaKindInvoice:
		return true
	}
	return false
}

// Media is a file uploaded to object storage, referenced by URL from impact
// proof bundles.
type Media struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ClubID      uuid.UUID  `json:"club_id" db:"club_id"`
	UploadedBy  uuid.UUID  `json:"uploaded_by" db:"uploaded_by"`
	Kind        MediaKind  `json:"kind" db:"kind"`
	FileName    string     `json:"file_name" db:"file_name"`
	FileSize    int64      `json:"file_size" db:"file_size"`
	MimeType    string     `json:"mime_type" db:"mime_type"`
	StoragePath string     `json:"-" db:"storage_path"`
	URL         string     `json:"url" db:"-"`
	Caption     *string    `json:"caption,omitempty" db:"caption"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}
