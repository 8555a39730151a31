package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anuragsoft/company-portal/internal/api/metrics"
	"github.com/anuragsoft/company-portal/internal/core/ports"
)

// MessageHandler handles the message log and derived conversation views.
type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required"`
	Attachment string `json:"attachment"`
}

type unreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// Send handles POST /messages.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.messages.Send(c.Request().Context(), actor, ports.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Attachment: req.Attachment,
	})
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.WithLabelValues(string(actor.Role)).Inc()
	return c.JSON(http.StatusCreated, msg)
}

// Thread handles GET /messages/:userId: the full exchange with one
// counterpart, oldest first. Fetching the thread marks the counterpart's
// messages as read.
//
// @Summary      Get the conversation with a user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Counterpart user id"
// @Success      200     {array}   domain.Message
// @Failure      404     {object}  errorResponse
// @Router       /messages/{userId} [get]
func (h *MessageHandler) Thread(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	msgs, err := h.messages.Thread(c.Request().Context(), actor, c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Conversations handles GET /messages/conversations: one entry per
// counterpart with the latest message and unread count.
//
// @Summary      List conversations
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.Conversation
// @Router       /messages/conversations [get]
func (h *MessageHandler) Conversations(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	convs, err := h.messages.Conversations(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, convs)
}

// UnreadCount handles GET /messages/unread/count.
//
// @Summary      Count unread messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /messages/unread/count [get]
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	n, err := h.messages.UnreadCount(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Unread: n})
}
