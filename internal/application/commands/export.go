package commands

import (
	"context"
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"boardsnap/internal/application"
	"boardsnap/internal/domain"
	"boardsnap/internal/ports"
)

// ExportResult contains the result of an export run
type ExportResult struct {
	Path    string
	Cards   int
	Inlined int
}

// ExportCommand fetches a board's bulk export and inlines every file
// attachment's content before writing the document. Any single failure
// aborts the whole run with nothing persisted: an export with attachments
// silently missing their content would be a corrupt artifact, so this mode
// is all-or-nothing where download mode is best-effort.
type ExportCommand struct {
	api      ports.BoardAPI
	sink     ports.Sink
	progress ports.Progress
	log      *log.Logger

	BoardURL string
	// ExportLink is the bulk export URL when the caller already knows it.
	// It is used only when it has the expected <shortlink>.json shape;
	// otherwise the URL is derived from BoardURL.
	ExportLink string
}

// NewExportCommand creates a new ExportCommand. progress may be nil.
func NewExportCommand(api ports.BoardAPI, sink ports.Sink, progress ports.Progress, logger *log.Logger, boardURL, exportLink string) *ExportCommand {
	if progress == nil {
		progress = nopProgress{}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ExportCommand{
		api:        api,
		sink:       sink,
		progress:   progress,
		log:        logger,
		BoardURL:   boardURL,
		ExportLink: exportLink,
	}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	if c.BoardURL == "" {
		return &application.ValidationError{
			Field:   "boardURL",
			Message: "board URL is required",
		}
	}
	return nil
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exportURL := domain.ResolveExportURL(c.BoardURL, c.ExportLink)
	c.log.WithField("url", exportURL).Debug("fetching bulk export")

	doc, err := c.api.FetchExport(ctx, exportURL)
	if err != nil {
		return nil, fmt.Errorf("fetch export: %w", err)
	}

	// Attachment records are live handles into the document, resolved card
	// by card before fan-out so racing jobs can never touch the wrong
	// record. Everything else in the document stays exactly as fetched.
	cards := doc.Cards()
	var jobs []domain.AttachmentRecord
	for _, card := range cards {
		for _, att := range card.Attachments() {
			if att.Classify() == domain.AttachmentFile {
				jobs = append(jobs, att)
			}
		}
	}

	c.progress.Begin(len(jobs))

	// Each job owns exactly one record and one error slot, so the fan-out
	// needs no locking.
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, att := range jobs {
		wg.Add(1)
		go func(i int, att domain.AttachmentRecord) {
			defer wg.Done()
			defer c.progress.Advance(att.Name())
			errs[i] = c.inline(ctx, att)
		}(i, att)
	}
	wg.Wait()
	c.progress.End("done")

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("inline attachments: %w", err)
		}
	}

	path, err := c.sink.SaveJSON(domain.ExportFileName(doc.ShortLink()), doc)
	if err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}

	return &ExportResult{
		Path:    path,
		Cards:   len(cards),
		Inlined: len(jobs),
	}, nil
}

func (c *ExportCommand) inline(ctx context.Context, att domain.AttachmentRecord) error {
	body, err := c.api.FetchAttachment(ctx, att.URL())
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return &application.EncodingError{Name: att.Name(), Err: err}
	}

	att.Inline(domain.DataURLPayload(domain.EncodeDataURL(att.MimeType(), data)))
	return nil
}
