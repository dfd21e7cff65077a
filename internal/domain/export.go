package domain

// ExportDocument is the board's bulk export: the full nested board data in
// one payload. The upstream shape is kept opaque so re-serialization
// preserves every field; only the attachment records touched by inlining
// are modified, in place, before the document is written out and discarded.
type ExportDocument map[string]any

// ShortLink returns the board's short link, used to name the artifact.
func (d ExportDocument) ShortLink() string {
	return asString(d["shortLink"])
}

// Cards returns the card records in document order. Records are live
// handles into the document: mutating one mutates the document.
func (d ExportDocument) Cards() []CardRecord {
	items, _ := d["cards"].([]any)
	out := make([]CardRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, CardRecord(m))
		}
	}
	return out
}

// CardRecord is one card object inside the opaque bulk export.
type CardRecord map[string]any

// Attachments returns the card's attachment records, live handles like the
// card itself.
func (r CardRecord) Attachments() []AttachmentRecord {
	items, _ := r["attachments"].([]any)
	out := make([]AttachmentRecord, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, AttachmentRecord(m))
		}
	}
	return out
}

// AttachmentRecord is one attachment object inside the opaque bulk export.
type AttachmentRecord map[string]any

func (r AttachmentRecord) Name() string     { return asString(r["name"]) }
func (r AttachmentRecord) URL() string      { return asString(r["url"]) }
func (r AttachmentRecord) MimeType() string { return asString(r["mimeType"]) }

func (r AttachmentRecord) IsUpload() bool {
	b, _ := r["isUpload"].(bool)
	return b
}

// Classify applies the file-or-link rule to a bulk export record.
func (r AttachmentRecord) Classify() AttachmentKind {
	return Classify(Attachment{IsUpload: r.IsUpload(), MimeType: r.MimeType()})
}

// Inline stores the encoded payload on the record and removes its remote
// URL; an exported attachment never carries both.
func (r AttachmentRecord) Inline(payload string) {
	r["file"] = payload
	delete(r, "url")
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
