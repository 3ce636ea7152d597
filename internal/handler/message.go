package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rwizi/clickatellhttp/clickatell"
	"github.com/rwizi/clickatellhttp/internal/request"
	"github.com/rwizi/clickatellhttp/internal/response"
)

// Gateway is the slice of the Clickatell client the message handler
// needs. *clickatell.Client satisfies it.
type Gateway interface {
	Send(ctx context.Context, message string, recipients []string) (*clickatell.SendResult, error)
	Status(ctx context.Context, apiMsgID string) (string, error)
	Balance(ctx context.Context) (float64, error)
}

// MessageHandler wires HTTP endpoints to the gateway client.
type MessageHandler struct {
	gw Gateway
}

// NewMessageHandler constructs a new MessageHandler with its dependency.
func NewMessageHandler(gw Gateway) *MessageHandler {
	return &MessageHandler{gw: gw}
}

// SendMessage godoc
// @Summary     Send a message
// @Description Sends a text message to one or more recipients. Per-recipient
// @Description rejections are reported in the "failed" list, not as an error.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendRequest true "Message and recipients"
// @Success     200 {object} response.SendResponse
// @Failure     400 {object} map[string]string
// @Failure     502 {object} map[string]string
// @Router      /messages [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.SendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.gw.Send(r.Context(), req.Content, req.To)
	if err != nil {
		switch {
		case errors.Is(err, clickatell.ErrEmptyMessage),
			errors.Is(err, clickatell.ErrNoRecipients):
			response.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			response.RespondError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromSendResult(result))
}

// GetMessageStatus godoc
// @Summary     Query delivery status
// @Description Returns the delivery status code of a previously sent message,
// @Description together with its human-readable description.
// @Tags        messages
// @Produce     json
// @Param       id path string true "API message id"
// @Success     200 {object} response.StatusResponse
// @Failure     404 {object} map[string]string
// @Failure     502 {object} map[string]string
// @Router      /messages/{id}/status [get]
func (h *MessageHandler) GetMessageStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	status, err := h.gw.Status(r.Context(), id)
	if err != nil {
		var gwErr *clickatell.GatewayError
		if errors.As(err, &gwErr) && gwErr.Code == "103" {
			// 103: Unknown API Message ID.
			response.RespondError(w, http.StatusNotFound, gwErr.Error())
			return
		}
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	payload := response.StatusPayload{
		MessageID:   id,
		Status:      status,
		Description: clickatell.StatusDescription(status),
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// GetBalance godoc
// @Summary     Account balance
// @Description Returns the remaining gateway account credit.
// @Tags        account
// @Produce     json
// @Success     200 {object} response.BalanceResponse
// @Failure     502 {object} map[string]string
// @Router      /balance [get]
func (h *MessageHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.gw.Balance(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.BalancePayload{Balance: balance})
}
