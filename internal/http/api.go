package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"property-auth/internal/auth"
	"property-auth/internal/domain"
	"property-auth/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	properties service.PropertyService
	tokens     *auth.TokenService
	logger     *logrus.Logger
}

func NewHandler(users service.UserService, properties service.PropertyService, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:      users,
		properties: properties,
		tokens:     tokens,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.POST("/register", h.register)
	router.POST("/login", h.login)

	protected := router.Group("/")
	protected.Use(h.RequireUser())
	{
		protected.GET("/properties", h.listProperties)
		protected.POST("/properties", h.createProperty)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type createPropertyRequest struct {
	Title      string `json:"title" binding:"required"`
	Address    string `json:"address"`
	PriceCents int64  `json:"price_cents"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.serverError(c, "register", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// missing or malformed credentials read the same as wrong ones
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User or password is invalid"})
		return
	}

	_, token, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User or password is invalid"})
			return
		}
		h.serverError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) listProperties(c *gin.Context) {
	properties, err := h.properties.ListProperties(c.Request.Context())
	if err != nil {
		h.serverError(c, "list properties", err)
		return
	}

	resp := make([]PropertyResponse, len(properties))
	for i := range properties {
		resp[i] = propertyToResponse(properties[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createProperty(c *gin.Context) {
	user, ok := UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.properties.CreateProperty(c.Request.Context(), user.ID, req.Title, req.Address, req.PriceCents)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.serverError(c, "create property", err)
		return
	}

	c.JSON(http.StatusCreated, propertyToResponse(*property))
}

// serverError logs the full failure server-side and answers with a generic
// message so internals never leak to the client.
func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.logger.WithError(err).Errorf("%s failed", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

type PropertyResponse struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	Address    string `json:"address"`
	PriceCents int64  `json:"price_cents"`
	CreatedAt  string `json:"created_at"`
}

func propertyToResponse(property domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:         property.ID,
		OwnerID:    property.OwnerID,
		Title:      property.Title,
		Address:    property.Address,
		PriceCents: property.PriceCents,
		CreatedAt:  property.CreatedAt.Format(time.RFC3339),
	}
}
