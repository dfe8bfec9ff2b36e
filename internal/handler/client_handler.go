package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"freelanceflow/internal/auth"
	apperrors "freelanceflow/internal/errors"
	"freelanceflow/internal/response"
	"freelanceflow/internal/service"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new client handler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// userIDFrom extracts the authenticated user ID placed on the context by the
// identity middleware.
func userIDFrom(c echo.Context) (uuid.UUID, error) {
	raw, ok := c.Get(auth.ContextUserIDKey).(string)
	if !ok || raw == "" {
		return uuid.Nil, apperrors.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity", "UNAUTHENTICATED")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewHTTPError(http.StatusUnauthorized, "invalid authenticated identity", "UNAUTHENTICATED")
	}
	return userID, nil
}

// clientIDParam parses the :id path parameter.
func clientIDParam(c echo.Context) (uuid.UUID, error) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewHTTPError(http.StatusBadRequest, "invalid client ID", "INVALID_UUID")
	}
	return clientID, nil
}

// ListClientsRequest holds the list query parameters. Page and PageSize are
// pointers so an explicit 0 is distinguishable from an absent parameter:
// absent gets the default, 0 reaches the service and fails its bounds check.
type ListClientsRequest struct {
	Page     *int   `query:"page"`
	PageSize *int   `query:"pageSize"`
	Search   string `query:"search"`
	IsActive *bool  `query:"isActive"`
}

// ListClients godoc
// @Summary List clients of the authenticated user
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 10)"
// @Param search query string false "Substring match on name, email or company"
// @Param isActive query bool false "Filter on active state"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /clients [get]
func (h *ClientHandler) ListClients(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var req ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters", "INVALID_QUERY")
	}
	page, pageSize := 1, 10
	if req.Page != nil {
		page = *req.Page
	}
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}

	clients, pagination, err := h.clientService.GetClients(c.Request().Context(), userID, service.ListOptions{
		Page:     page,
		PageSize: pageSize,
		Search:   req.Search,
		IsActive: req.IsActive,
	})
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, response.Paginated(clients, response.Pagination{
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalItems: pagination.TotalItems,
		TotalPages: pagination.TotalPages,
	}, "clients retrieved successfully"))
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateClientInput true "Client data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var input service.CreateClientInput
	if err := c.Bind(&input); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	client, err := h.clientService.CreateClient(c.Request().Context(), userID, input)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusCreated, response.Success(client, "client created successfully"))
}

// GetClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}
	clientID, err := clientIDParam(c)
	if err != nil {
		return err
	}

	client, err := h.clientService.GetClientByID(c.Request().Context(), userID, clientID)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, response.Success(client, "client retrieved successfully"))
}

// UpdateClient godoc
// @Summary Partially update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body service.UpdateClientInput true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}
	clientID, err := clientIDParam(c)
	if err != nil {
		return err
	}

	var input service.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	client, err := h.clientService.UpdateClient(c.Request().Context(), userID, clientID, input)
	if err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, response.Success(client, "client updated successfully"))
}

// DeleteClient godoc
// @Summary Soft-delete a client
// @Description Marks the client inactive. The record stays retrievable.
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}
	clientID, err := clientIDParam(c)
	if err != nil {
		return err
	}

	if err := h.clientService.DeleteClient(c.Request().Context(), userID, clientID); err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, response.Success(nil, "client deleted successfully"))
}

// PermanentlyDeleteClient godoc
// @Summary Permanently delete a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /clients/{id}/permanent [delete]
func (h *ClientHandler) PermanentlyDeleteClient(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}
	clientID, err := clientIDParam(c)
	if err != nil {
		return err
	}

	if err := h.clientService.PermanentlyDeleteClient(c.Request().Context(), userID, clientID); err != nil {
		return apperrors.MapErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, response.Success(nil, "client permanently deleted"))
}
