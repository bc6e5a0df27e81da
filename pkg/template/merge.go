package template

import "time"

// MergeData carries the per-recipient fields available to campaign content.
type MergeData struct {
	Email          string
	Name           string
	CompanyName    string
	UnsubscribeURL string
	Timestamp      time.Time
}

// PreviewData returns canonical merge data used for template previews and
// test renders when no real recipient is in play.
func PreviewData() MergeData {
	return MergeData{
		Email:          "preview@example.com",
		Name:           "Preview Recipient",
		CompanyName:    "Acme Inc",
		UnsubscribeURL: "https://example.com/unsubscribe/preview",
		Timestamp:      time.Now(),
	}
}
