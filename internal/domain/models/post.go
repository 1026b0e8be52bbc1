package models

type (
	// Post is the final content handed to the publisher. Image is nil
	// for a text-only post.
	Post struct {
		Text  string
		Image *ImagePayload
	}

	// PublishReceipt reports what the platform accepted.
	PublishReceipt struct {
		ID            string
		MediaCategory string // IMAGE or NONE
	}
)
