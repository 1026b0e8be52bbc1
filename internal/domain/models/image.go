package models

import "strings"

// ImageKind distinguishes the three forms an image payload can arrive
// in. The form is resolved once, where the payload is received, so no
// downstream code has to re-inspect the raw string.
type ImageKind int

const (
	// ImageKindURL means the payload is a remote URL to fetch.
	ImageKindURL ImageKind = iota
	// ImageKindDataURI means the payload is a data:image/...;base64,... blob.
	ImageKindDataURI
	// ImageKindBase64 means the payload is a bare base64 string.
	ImageKindBase64
)

type (
	// ImagePayload is the tagged form of a generated image. For
	// ImageKindURL only URL is set; for the base64 kinds Data holds the
	// encoded bytes without any data-URI header.
	ImagePayload struct {
		Kind     ImageKind
		URL      string
		MIMEType string
		Data     string
	}

	// ImageResult is the outcome of the best-effort image stage:
	// a payload was produced, the stage degraded with a reason, or a
	// fatal error occurred. The image backend never returns a fatal
	// error; the arm exists so the orchestrator's continue-vs-abort
	// decision stays explicit.
	ImageResult struct {
		Payload *ImagePayload
		Reason  string
		Err     error
	}
)

// ResolveImagePayload classifies a raw image string by prefix: "http"
// means a remote URL, "data:image" a data URI, anything else a bare
// base64 blob.
func ResolveImagePayload(raw string) ImagePayload {
	switch {
	case strings.HasPrefix(raw, "http"):
		return ImagePayload{Kind: ImageKindURL, URL: raw}
	case strings.HasPrefix(raw, "data:image"):
		mimeType := "image/png"
		data := raw
		if header, encoded, ok := strings.Cut(raw, ","); ok {
			data = encoded
			header = strings.TrimPrefix(header, "data:")
			if mt, _, found := strings.Cut(header, ";"); found && mt != "" {
				mimeType = mt
			}
		}
		return ImagePayload{Kind: ImageKindDataURI, MIMEType: mimeType, Data: data}
	default:
		return ImagePayload{Kind: ImageKindBase64, MIMEType: "image/png", Data: raw}
	}
}

// ImageProduced builds a successful image result.
func ImageProduced(payload ImagePayload) ImageResult {
	return ImageResult{Payload: &payload}
}

// ImageDegraded builds a "proceed without image" result.
func ImageDegraded(reason string) ImageResult {
	return ImageResult{Reason: reason}
}

// HasImage reports whether a payload was produced.
func (r ImageResult) HasImage() bool {
	return r.Err == nil && r.Payload != nil
}
