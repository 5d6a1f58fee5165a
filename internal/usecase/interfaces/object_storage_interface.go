package interfaces

import "context"

// UploadSlot is a pre-authorized direct-upload destination for a vehicle
// image or document. The engine records Key only; object bytes never pass
// through it.
type UploadSlot struct {
	UploadURL string
	PublicURL string
	Key       string
}

// IObjectStore abstracts the object-storage collaborator (S3).
type IObjectStore interface {
	RequestUploadSlot(ctx context.Context, vehicleID, imageType, fileName, mimeType string) (UploadSlot, error)

	// DeleteObjects removes the given keys best-effort and returns the keys
	// that could not be deleted.
	DeleteObjects(ctx context.Context, keys []string) (failed []string, err error)
}
