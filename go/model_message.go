package petstoreserver

// Message acknowledges operations that return no record.
type Message struct {
	Message string `json:"message"`
}
