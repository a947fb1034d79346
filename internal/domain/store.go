package domain

// RecordStore reconciles and persists the locally kept collections.
// Screens reload from it on activation; nothing is cached between calls.
type RecordStore interface {
	// === Downloads ===
	LoadDownloadedRecords() ([]DownloadedRecord, error)
	SaveDownloadedRecord(originalURL, localPath string) error

	// === Likes ===
	LoadLikedItems() ([]LikedItem, error)
	ToggleLiked(uri string) (bool, error)
	IsLiked(uri string) (bool, error)

	// === Profile ===
	LoadProfile() (Profile, bool, error)
	SaveProfile(p Profile) error
}
