package domain

import (
	"encoding/base64"
	"strings"
)

// EncodeDataURL renders binary content as a data URL, the same
// "<prefix>,<payload>" form the browser's file reader produces.
func EncodeDataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DataURLPayload strips the "data:<mime>;base64" prefix, keeping only the
// encoded payload that gets stored on an attachment.
func DataURLPayload(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}
