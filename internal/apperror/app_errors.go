package apperror

import "errors"

var (
	ErrInvalidBoard = errors.New("invalid board configuration")
	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is already finished")
)
