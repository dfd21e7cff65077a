package domain

import "testing"

func TestResolveExportURL(t *testing.T) {
	tests := []struct {
		name      string
		pageURL   string
		candidate string
		want      string
	}{
		{
			name:      "well-shaped candidate wins",
			pageURL:   "https://trello.com/b/abCD1234/my-board",
			candidate: "https://trello.com/b/abCD1234.json",
			want:      "https://trello.com/b/abCD1234.json",
		},
		{
			name:      "candidate with wrong shape is ignored",
			pageURL:   "https://trello.com/b/abCD1234/my-board",
			candidate: "https://trello.com/b/abCD1234/export",
			want:      "https://trello.com/b/abCD1234.json",
		},
		{
			name:      "short candidate shortlink is ignored",
			pageURL:   "https://trello.com/b/abCD1234/my-board",
			candidate: "https://trello.com/b/abc.json",
			want:      "https://trello.com/b/abCD1234.json",
		},
		{
			name:    "derived from page URL without candidate",
			pageURL: "https://trello.com/b/abCD1234/my-board",
			want:    "https://trello.com/b/abCD1234.json",
		},
		{
			name:    "trailing slash on page URL",
			pageURL: "https://trello.com/b/abCD1234/my-board/",
			want:    "https://trello.com/b/abCD1234.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveExportURL(tt.pageURL, tt.candidate); got != tt.want {
				t.Errorf("ResolveExportURL(%q, %q) = %q, want %q", tt.pageURL, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName("abCD1234"); got != "abCD1234-inclAtt.json" {
		t.Errorf("ExportFileName() = %q, want %q", got, "abCD1234-inclAtt.json")
	}
}

func TestAttachmentFileName(t *testing.T) {
	card := Card{IDShort: 42}

	got := AttachmentFileName(card, Attachment{FileName: "photo.png"})
	if got != "42-photo.png" {
		t.Errorf("AttachmentFileName() = %q, want %q", got, "42-photo.png")
	}

	// Falls back to the display name when the upstream has no file name.
	got = AttachmentFileName(card, Attachment{Name: "scan.pdf"})
	if got != "42-scan.pdf" {
		t.Errorf("AttachmentFileName() = %q, want %q", got, "42-scan.pdf")
	}
}

func TestSortManifest(t *testing.T) {
	entries := []CardManifestEntry{
		{ID: "c", IDShort: 30},
		{ID: "a", IDShort: 1},
		{ID: "b", IDShort: 12},
	}

	SortManifest(entries)

	want := []int{1, 12, 30}
	for i, entry := range entries {
		if entry.IDShort != want[i] {
			t.Errorf("entry %d has IDShort %d, want %d", i, entry.IDShort, want[i])
		}
	}
}
