package session

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medgate/medgate/internal/platform/feedback"
)

// Handler exposes the session lifecycle over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterPublicRoutes mounts the endpoints reachable without a session.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/session/login", h.Login)
	g.POST("/session/register", h.Register)
}

// RegisterRoutes mounts the endpoints that require an established session.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/session", h.Verify)
	g.DELETE("/session", h.Logout)
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (h *Handler) Login(c echo.Context) error {
	var creds Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	if creds.Email == "" || creds.Password == "" {
		return c.JSON(http.StatusBadRequest, feedback.Error("email and password are required"))
	}

	res, err := h.svc.Login(c.Request().Context(), creds)
	if err != nil {
		return c.JSON(http.StatusBadGateway, feedback.Error("authentication service unavailable"))
	}
	if res.Failed {
		return c.JSON(http.StatusUnauthorized, feedback.Error(res.Message))
	}
	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, User: res.User})
}

func (h *Handler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, feedback.Error("invalid request body"))
	}
	if form.Email == "" || form.Password == "" {
		return c.JSON(http.StatusBadRequest, feedback.Error("email and password are required"))
	}

	res, err := h.svc.Register(c.Request().Context(), form)
	if err != nil {
		return c.JSON(http.StatusBadGateway, feedback.Error("authentication service unavailable"))
	}
	if res.Failed {
		return c.JSON(http.StatusBadRequest, feedback.Error(res.Message))
	}
	return c.JSON(http.StatusCreated, loginResponse{Token: res.Token, User: res.User})
}

// Verify revalidates the caller's backend token and returns the current
// profile. Clients call it on page load to decide whether to show the login
// screen.
func (h *Handler) Verify(c echo.Context) error {
	sess := FromContext(c.Request().Context())
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, feedback.Error("not authenticated"))
	}

	verified, err := h.svc.Verify(c.Request().Context(), sess.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, feedback.Error("session expired"))
		}
		return c.JSON(http.StatusBadGateway, feedback.Error("authentication service unavailable"))
	}
	return c.JSON(http.StatusOK, verified.User)
}

func (h *Handler) Logout(c echo.Context) error {
	sess := FromContext(c.Request().Context())
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, feedback.Error("not authenticated"))
	}
	if err := h.svc.Logout(c.Request().Context(), sess.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, feedback.Error("logout failed"))
	}
	return c.JSON(http.StatusOK, feedback.Success(nil, "Logged out"))
}
