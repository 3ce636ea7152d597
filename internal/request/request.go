package request

// SendRequest is the JSON body for sending a message through the bridge.
type SendRequest struct {
	// To lists the destination numbers in international format.
	To []string `json:"to"`
	// Content is the message text.
	Content string `json:"content"`
}
