package dto

// BundleStatusResponse is the validity projection cached under
// bundle-status:{code}. Remaining time is derived from expiresAt at
// query time, not from the stored snapshot.
type BundleStatusResponse struct {
	IsValid        bool `json:"isValid"`
	RemainingDays  int  `json:"remainingDays"`
	RemainingHours int  `json:"remainingHours"`
}
