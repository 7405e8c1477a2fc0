package controllers

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrItemNotFound    = &CustomError{"Item not found"}
	ErrCodeNotFound    = &CustomError{"Serial number not found"}
	ErrRoomNotFound    = &CustomError{"Room not found"}
	ErrMissingLocation = &CustomError{"Query parameter 'location' is required"}
)
