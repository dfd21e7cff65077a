package ports

import (
	"context"
	"io"

	"boardsnap/internal/domain"
)

// BoardAPI is the single point of contact with the remote kanban API.
type BoardAPI interface {
	// ResolveBoardID maps a board page URL to its backend identifier.
	ResolveBoardID(ctx context.Context, pageURL string) (string, error)

	// ListCards returns every card on a board, without attachments.
	ListCards(ctx context.Context, boardID string) ([]domain.Card, error)

	// CardAttachments returns a card's full attachment metadata.
	CardAttachments(ctx context.Context, boardID, cardID string) ([]domain.Attachment, error)

	// FetchExport retrieves the board's bulk export document in one call,
	// keeping the upstream structure intact.
	FetchExport(ctx context.Context, exportURL string) (domain.ExportDocument, error)

	// FetchAttachment opens a stream of raw attachment content. Credentials
	// are never forwarded on attachment URLs. The caller owns the stream.
	FetchAttachment(ctx context.Context, url string) (io.ReadCloser, error)
}
