package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for contact message handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Subject    string `json:"subject" validate:"required,max=255"`
	Message    string `json:"message" validate:"required,max=5000"`
}

// SendMessage delivers a contact message to another account.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return response.BindingError(c, "Invalid receiver id")
	}

	user := deliverycontext.CurrentUser(c)

	message, err := h.uc.SendMessage(c.Request().Context(), user.ID, usecase.SendMessageInput{
		ReceiverID: receiverID,
		Subject:    req.Subject,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewMessageView(message), "Message sent successfully")
}

// ListInbox returns a page of the authenticated account's received messages.
func (h *MessageHandler) ListInbox(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.ListInbox(c.Request().Context(), user.ID, bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewMessageViews(output.Messages), pagination(output.PageInfo))
}

// ListSent returns a page of the authenticated account's sent messages.
func (h *MessageHandler) ListSent(c echo.Context) error {
	user := deliverycontext.CurrentUser(c)

	output, err := h.uc.ListSent(c.Request().Context(), user.ID, bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, NewMessageViews(output.Messages), pagination(output.PageInfo))
}

// GetMessage returns a message visible to the actor, marking received
// messages read.
func (h *MessageHandler) GetMessage(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	message, err := h.uc.GetMessage(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewMessageView(message), "")
}

// DeleteMessage removes a message visible to the actor.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	actor := deliverycontext.CurrentUser(c)

	if err := h.uc.DeleteMessage(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
