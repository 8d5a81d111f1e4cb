package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyTranscription        = errors.New("transcription is empty")
	ErrTranscriptionTooLong      = errors.New("transcription is too long")
	ErrTranscriptionLimitReached = errors.New("daily transcription limit reached")
)
