package response

import (
	"github.com/rwizi/clickatellhttp/clickatell"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status  string `json:"status"`
	Gateway string `json:"gateway"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// SentMessage is one recipient the gateway accepted a message for.
type SentMessage struct {
	MessageID string `json:"messageId"`
	To        string `json:"to"`
}

// FailedMessage is one recipient the gateway rejected, with the
// gateway error code and its description.
type FailedMessage struct {
	Code        string `json:"code"`
	To          string `json:"to"`
	Description string `json:"description"`
}

type SendPayload struct {
	Sent   []SentMessage   `json:"sent"`
	Failed []FailedMessage `json:"failed"`
}

type SendResponse struct {
	Success   bool        `json:"success"`
	Data      SendPayload `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// StatusPayload reports a message's delivery status code together with
// the human-readable mapping from the status-code table.
type StatusPayload struct {
	MessageID   string `json:"messageId"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type StatusResponse struct {
	Success   bool          `json:"success"`
	Data      StatusPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type BalancePayload struct {
	Balance float64 `json:"balance"`
}

type BalanceResponse struct {
	Success   bool           `json:"success"`
	Data      BalancePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

// FromSendResult converts a gateway send result into the wire payload.
func FromSendResult(result *clickatell.SendResult) SendPayload {
	payload := SendPayload{
		Sent:   make([]SentMessage, len(result.Successes)),
		Failed: make([]FailedMessage, len(result.Failures)),
	}

	for i, s := range result.Successes {
		payload.Sent[i] = SentMessage{
			MessageID: s.APIMessageID,
			To:        s.Recipient,
		}
	}
	for i, f := range result.Failures {
		payload.Failed[i] = FailedMessage{
			Code:        f.Code,
			To:          f.Recipient,
			Description: f.Description,
		}
	}

	return payload
}
