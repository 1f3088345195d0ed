package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrEmptyTranscript = errors.New("exchange produced no transcript")
	ErrValidation      = errors.New("validation failed")
)
