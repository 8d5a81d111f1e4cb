package telegram

import (
	"errors"

	"voice-task-extractor/internal/extraction"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, extraction.ErrTranscriptionLimitReached):
		return "You have used all of today's transcriptions. Come back tomorrow or upgrade to premium."
	case errors.Is(err, extraction.ErrTranscriptionTooLong):
		return "That message is too long. Please split it into smaller parts."
	case errors.Is(err, extraction.ErrEmptyTranscription):
		return "That message is empty."
	default:
		return "Something went wrong while processing your message. Please try again."
	}
}
