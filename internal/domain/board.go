package domain

// Board is the top-level resource cards belong to. It is resolved once per
// run and never mutated afterwards.
type Board struct {
	ID        string `json:"id"`
	ShortLink string `json:"shortLink"`
	URL       string `json:"url"`
	ShortURL  string `json:"shortUrl"`
}

// Card is a unit of content on a board, holding zero or more attachments.
type Card struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	IDShort     int          `json:"idShort"`
	URL         string       `json:"url,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a file or link associated with a card, as listed by the
// per-card attachments endpoint. It is decode-only metadata: download mode
// reads it to classify and fetch, and never serializes it back out.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Bytes    int64  `json:"bytes"`
	IsUpload bool   `json:"isUpload"`
}

// CardManifestEntry is the flat projection of a card that goes into the
// download-mode manifest. It is built from the card listing alone and does
// not depend on attachment fetches.
type CardManifestEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IDShort int    `json:"idShort"`
	URL     string `json:"url"`
}
