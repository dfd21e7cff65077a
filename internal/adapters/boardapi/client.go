package boardapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"boardsnap/internal/application"
	"boardsnap/internal/domain"
)

// Client implements ports.BoardAPI against the remote kanban REST API. It
// holds no state beyond the shared HTTP client.
type Client struct {
	baseURL string
	key     string
	token   string
	http    *http.Client
	log     *log.Logger
}

// New creates a Client. key and token are appended to API requests when both
// are set; attachment downloads never carry them. timeout 0 means no
// timeout, matching the original's behavior of letting a hung call stall its
// job.
func New(baseURL, key, token string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// ResolveBoardID maps a board page URL to the backend board identifier by
// listing the caller's boards and matching on the exact URL.
func (c *Client) ResolveBoardID(ctx context.Context, pageURL string) (string, error) {
	var boards []domain.Board
	u := c.apiURL("/members/me/boards", url.Values{
		"fields": {"id,shortLink,url,shortUrl"},
	})
	if err := c.fetchJSON(ctx, u, &boards); err != nil {
		return "", err
	}

	for _, b := range boards {
		if b.URL == pageURL {
			return b.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", application.ErrBoardNotFound, pageURL)
}

// ListCards returns every card on the board, without attachments.
func (c *Client) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	u := c.apiURL("/boards/"+boardID+"/cards/all", url.Values{
		"fields": {"id,name,idShort,url"},
	})
	if err := c.fetchJSON(ctx, u, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// CardAttachments returns the card's full attachment metadata.
func (c *Client) CardAttachments(ctx context.Context, boardID, cardID string) ([]domain.Attachment, error) {
	var card domain.Card
	u := c.apiURL("/boards/"+boardID+"/cards/"+cardID, url.Values{
		"fields":          {"id,name"},
		"attachments":     {"true"},
		"checkItemStates": {"false"},
	})
	if err := c.fetchJSON(ctx, u, &card); err != nil {
		return nil, err
	}
	return card.Attachments, nil
}

// FetchExport retrieves the board's bulk export document. The body is
// decoded into the generic document type so fields this tool knows nothing
// about survive the round trip untouched.
func (c *Client) FetchExport(ctx context.Context, exportURL string) (domain.ExportDocument, error) {
	var doc domain.ExportDocument
	if err := c.fetchJSON(ctx, exportURL, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FetchAttachment opens a stream of raw attachment content. The request
// carries no credentials: attachment URLs are pre-signed upstream.
func (c *Client) FetchAttachment(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &application.FetchError{URL: rawURL, Err: err}
	}

	c.log.WithField("url", rawURL).Debug("GET attachment")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &application.FetchError{URL: rawURL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &application.FetchError{URL: rawURL, Status: resp.StatusCode}
	}
	return resp.Body, nil
}

// fetchJSON issues an authenticated GET and decodes the body into v. The
// upstream sometimes answers 200 even for error conditions, so a body that
// fails to decode counts as a fetch failure too.
func (c *Client) fetchJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &application.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", rawURL).Debug("GET")
	resp, err := c.http.Do(req)
	if err != nil {
		return &application.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &application.FetchError{URL: rawURL, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &application.FetchError{URL: rawURL, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}

// apiURL builds an API URL with credentials attached when configured.
func (c *Client) apiURL(path string, q url.Values) string {
	if c.key != "" && c.token != "" {
		q.Set("key", c.key)
		q.Set("token", c.token)
	}
	return c.baseURL + path + "?" + q.Encode()
}
