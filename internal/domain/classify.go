package domain

// AttachmentKind says whether an attachment is a stored file or an external
// link.
type AttachmentKind int

const (
	AttachmentLink AttachmentKind = iota
	AttachmentFile
)

func (k AttachmentKind) String() string {
	if k == AttachmentFile {
		return "file"
	}
	return "link"
}

// Classify decides from metadata alone whether an attachment may be
// downloaded and inlined. Only uploads with a known mime type are files;
// everything else is a link and must be left untouched.
func Classify(a Attachment) AttachmentKind {
	if a.IsUpload && a.MimeType != "" {
		return AttachmentFile
	}
	return AttachmentLink
}
