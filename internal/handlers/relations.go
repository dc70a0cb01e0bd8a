package handlers

import (
	"net/http"
	"strconv"

	"github.com/chatup/backend/internal/middleware"
	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RelationsHandler handles HTTP requests related to friend relations
type RelationsHandler struct {
	relationsService *services.RelationsService
}

// NewRelationsHandler creates a new RelationsHandler
func NewRelationsHandler(relationsService *services.RelationsService) *RelationsHandler {
	return &RelationsHandler{relationsService: relationsService}
}

// RegisterRelationRoutes registers relation-related routes
func (h *RelationsHandler) RegisterRelationRoutes(g *echo.Group) {
	g.POST("/relations/request/:receiverId", h.RequestRelation)
	g.PUT("/relations/accept/:senderId", h.AcceptRelation)
	g.DELETE("/relations/remove/:friendId", h.RemoveRelation)
	g.POST("/relations/block/:blockedId", h.BlockRelation)
	g.DELETE("/relations/unblock/:blockedId", h.UnblockRelation)
	g.GET("/relations/friends", h.GetFriends)
	g.GET("/relations/blocked", h.GetUserBlocked)
	g.GET("/relations/blocked-by", h.GetBlockedUsers)
}

// currentUser returns the user resolved by the session middleware
func currentUser(c echo.Context) *models.User {
	return c.Get(middleware.UserContextKey).(*models.User)
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// RequestRelation sends a friend request to the receiver
func (h *RelationsHandler) RequestRelation(c echo.Context) error {
	receiverID, err := parseIDParam(c, "receiverId")
	if err != nil {
		return err
	}

	ok, err := h.relationsService.RequestRelation(currentUser(c), receiverID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid relationship request")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Relation requested"})
}

// AcceptRelation accepts a pending friend request from the sender
func (h *RelationsHandler) AcceptRelation(c echo.Context) error {
	senderID, err := parseIDParam(c, "senderId")
	if err != nil {
		return err
	}

	ok, err := h.relationsService.AcceptRelation(currentUser(c), senderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Pending request not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Relation accepted"})
}

// RemoveRelation removes an accepted friendship
func (h *RelationsHandler) RemoveRelation(c echo.Context) error {
	friendID, err := parseIDParam(c, "friendId")
	if err != nil {
		return err
	}

	ok, err := h.relationsService.RemoveRelation(currentUser(c), friendID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Relationship not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Relation removed"})
}

// BlockRelation blocks a user, overriding any prior relation state
func (h *RelationsHandler) BlockRelation(c echo.Context) error {
	blockedID, err := parseIDParam(c, "blockedId")
	if err != nil {
		return err
	}

	ok, err := h.relationsService.BlockRelation(currentUser(c), blockedID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Block operation failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User blocked"})
}

// UnblockRelation removes a block previously placed by the caller
func (h *RelationsHandler) UnblockRelation(c echo.Context) error {
	blockedID, err := parseIDParam(c, "blockedId")
	if err != nil {
		return err
	}

	ok, err := h.relationsService.UnblockRelation(currentUser(c), blockedID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Block relationship not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User unblocked"})
}

// GetFriends lists the caller's accepted relations
func (h *RelationsHandler) GetFriends(c echo.Context) error {
	relations, err := h.relationsService.GetFriends(currentUser(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, relations)
}

// GetUserBlocked lists the relations the caller blocked
func (h *RelationsHandler) GetUserBlocked(c echo.Context) error {
	relations, err := h.relationsService.GetUserBlocked(currentUser(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, relations)
}

// GetBlockedUsers lists the relations blocking the caller
func (h *RelationsHandler) GetBlockedUsers(c echo.Context) error {
	relations, err := h.relationsService.GetBlockedUsers(currentUser(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, relations)
}
