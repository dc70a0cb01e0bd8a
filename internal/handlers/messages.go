package handlers

import (
	"net/http"

	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// MessagingHandler handles HTTP requests related to messages
type MessagingHandler struct {
	messagingService *services.MessagingService
}

// NewMessagingHandler creates a new MessagingHandler
func NewMessagingHandler(messagingService *services.MessagingService) *MessagingHandler {
	return &MessagingHandler{messagingService: messagingService}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessagingHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages/:relationId", h.SendMessage)
	g.GET("/messages/:relationId", h.ListMessages)
	g.PUT("/messages/:messageId", h.EditMessage)
	g.DELETE("/messages/:messageId", h.RemoveMessage)
}

// SendMessage appends a message to a relation the caller participates in
func (h *MessagingHandler) SendMessage(c echo.Context) error {
	relationID, err := parseIDParam(c, "relationId")
	if err != nil {
		return err
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.messagingService.SendMessage(currentUser(c), relationID, req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Message could not be sent")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent"})
}

// ListMessages returns a relation's messages for a participant
func (h *MessagingHandler) ListMessages(c echo.Context) error {
	relationID, err := parseIDParam(c, "relationId")
	if err != nil {
		return err
	}

	messages, err := h.messagingService.ListMessages(currentUser(c), relationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if messages == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Relation not found")
	}
	return c.JSON(http.StatusOK, messages)
}

// EditMessage replaces the content of a message sent by the caller
func (h *MessagingHandler) EditMessage(c echo.Context) error {
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		return err
	}

	var req models.EditMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.messagingService.EditMessage(currentUser(c), messageID, req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message edited"})
}

// RemoveMessage deletes a message sent by the caller
func (h *MessagingHandler) RemoveMessage(c echo.Context) error {
	messageID, err := parseIDParam(c, "messageId")
	if err != nil {
		return err
	}

	ok, err := h.messagingService.RemoveMessage(currentUser(c), messageID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Message removed"})
}
