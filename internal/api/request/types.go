package request

// CreateGameRequest is the request body for creating a game. Zero rows or
// cols fall back to the standard board size.
type CreateGameRequest struct {
	Rows    int `json:"rows,omitempty"`
	Cols    int `json:"cols,omitempty"`
	Special int `json:"special,omitempty"`
}

// MoveRequest is the request body for placing or swapping the waiting tile
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// AutoplayRequest is the request body for letting a bot play moves.
// Zero turns plays until the board is full.
type AutoplayRequest struct {
	Strategy string `json:"strategy,omitempty"`
	Turns    int    `json:"turns,omitempty"`
}
