package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ManifestFileName is the download-mode card summary artifact.
const ManifestFileName = "00-cards.json"

// exportURLPattern matches a bulk export link: .../<8-char shortlink>.json
var exportURLPattern = regexp.MustCompile(`/[A-Za-z0-9]{8}\.json$`)

// ResolveExportURL picks the bulk export URL for a board. The candidate link
// wins when it already has the expected shape; otherwise the URL is derived
// from the board page URL by replacing the trailing path segment with
// ".json".
func ResolveExportURL(pageURL, candidate string) string {
	if candidate != "" && exportURLPattern.MatchString(candidate) {
		return candidate
	}
	trimmed := strings.TrimRight(pageURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[:i] + ".json"
	}
	return trimmed + ".json"
}

// ExportFileName names the inlined export artifact for a board.
func ExportFileName(shortLink string) string {
	return shortLink + "-inclAtt.json"
}

// AttachmentFileName names a downloaded attachment on disk, prefixed with
// the owning card's short key.
func AttachmentFileName(c Card, a Attachment) string {
	name := a.FileName
	if name == "" {
		name = a.Name
	}
	return fmt.Sprintf("%d-%s", c.IDShort, name)
}

// SortManifest orders manifest entries by card short key ascending, making
// card iteration order irrelevant to the persisted artifact.
func SortManifest(entries []CardManifestEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IDShort < entries[j].IDShort
	})
}
