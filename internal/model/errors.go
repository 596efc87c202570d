package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds  = errors.New("position is outside the board")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrCellEmpty    = errors.New("cell has no tile")

	// Tile errors
	ErrNoMarker = errors.New("tile has no marker")

	// Rule errors
	ErrIllegalMove = errors.New("illegal move")

	// Supply errors
	ErrEmptySupply = errors.New("supply is empty")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameNotFinished = errors.New("game is not finished")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrNoTileToPlay    = errors.New("no tile is waiting to be played")
	ErrResultNotFound  = errors.New("game result not found")
)
