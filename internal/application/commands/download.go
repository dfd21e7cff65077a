package commands

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"boardsnap/internal/application"
	"boardsnap/internal/domain"
	"boardsnap/internal/ports"
)

// DownloadResult contains the result of a download run
type DownloadResult struct {
	ManifestPath string
	Cards        int
	Saved        int
	Failed       int
}

// DownloadCommand saves every file attachment on a board and writes a flat
// card manifest. Board resolution and the card listing are fatal; individual
// attachment failures are logged and skipped so one bad file cannot sink the
// rest of the batch.
type DownloadCommand struct {
	api      ports.BoardAPI
	sink     ports.Sink
	progress ports.Progress
	log      *log.Logger

	BoardURL string
}

// NewDownloadCommand creates a new DownloadCommand. progress may be nil.
func NewDownloadCommand(api ports.BoardAPI, sink ports.Sink, progress ports.Progress, logger *log.Logger, boardURL string) *DownloadCommand {
	if progress == nil {
		progress = nopProgress{}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &DownloadCommand{
		api:      api,
		sink:     sink,
		progress: progress,
		log:      logger,
		BoardURL: boardURL,
	}
}

// Validate checks if the download operation is valid
func (c *DownloadCommand) Validate() error {
	if c.BoardURL == "" {
		return &application.ValidationError{
			Field:   "boardURL",
			Message: "board URL is required",
		}
	}
	return nil
}

// Execute runs the download command
func (c *DownloadCommand) Execute(ctx context.Context) (*DownloadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	boardID, err := c.api.ResolveBoardID(ctx, c.BoardURL)
	if err != nil {
		return nil, fmt.Errorf("resolve board: %w", err)
	}

	cards, err := c.api.ListCards(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	c.progress.Begin(len(cards))

	manifest := make([]domain.CardManifestEntry, 0, len(cards))
	var wg sync.WaitGroup
	var saved, failed atomic.Int64

	for _, card := range cards {
		manifest = append(manifest, domain.CardManifestEntry{
			ID:      card.ID,
			Name:    card.Name,
			IDShort: card.IDShort,
			URL:     card.URL,
		})

		wg.Add(1)
		go func(card domain.Card) {
			defer wg.Done()
			defer c.progress.Advance(card.Name)
			c.downloadCardFiles(ctx, boardID, card, &saved, &failed)
		}(card)
	}

	// The manifest comes from the card listing alone: it is written as soon
	// as all per-card fetches are issued and never waits on them.
	domain.SortManifest(manifest)
	manifestPath, err := c.sink.SaveJSON(domain.ManifestFileName, manifest)
	if err != nil {
		wg.Wait()
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	wg.Wait()
	c.progress.End("done")

	return &DownloadResult{
		ManifestPath: manifestPath,
		Cards:        len(cards),
		Saved:        int(saved.Load()),
		Failed:       int(failed.Load()),
	}, nil
}

func (c *DownloadCommand) downloadCardFiles(ctx context.Context, boardID string, card domain.Card, saved, failed *atomic.Int64) {
	attachments, err := c.api.CardAttachments(ctx, boardID, card.ID)
	if err != nil {
		c.log.WithError(err).WithField("card", card.ID).Warn("attachment listing failed, skipping card")
		failed.Add(1)
		return
	}

	for _, att := range attachments {
		if domain.Classify(att) != domain.AttachmentFile {
			continue
		}
		if err := c.saveAttachment(ctx, card, att); err != nil {
			c.log.WithError(err).WithFields(log.Fields{
				"card":       card.ID,
				"attachment": att.ID,
			}).Warn("attachment download failed, skipping")
			failed.Add(1)
			continue
		}
		saved.Add(1)
	}
}

func (c *DownloadCommand) saveAttachment(ctx context.Context, card domain.Card, att domain.Attachment) error {
	body, err := c.api.FetchAttachment(ctx, att.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return &application.EncodingError{Name: att.FileName, Err: err}
	}

	_, err = c.sink.SaveFile(domain.AttachmentFileName(card, att), data)
	return err
}

type nopProgress struct{}

func (nopProgress) Begin(int)      {}
func (nopProgress) Advance(string) {}
func (nopProgress) End(string)     {}
