package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recommender-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.create)
	rg.GET("/users", h.list)
	rg.GET("/users/:id", h.get)
	rg.PUT("/users/:id", h.update)
	rg.DELETE("/users/:id", h.delete)
}

type userRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Region       string `json:"region"`
	Rank         string `json:"rank"`
	FavoriteRole string `json:"favoriteRole"`
}

func (h *Handler) create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "name and a valid email are required", nil)
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), User{
		Name:         req.Name,
		Email:        req.Email,
		Region:       req.Region,
		Rank:         req.Rank,
		FavoriteRole: req.FavoriteRole,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register user", nil)
		return
	}
	respond.Created(c, user)
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list users", nil)
		return
	}
	respond.OK(c, gin.H{"total": len(list), "users": list})
}

func (h *Handler) get(c *gin.Context) {
	user, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.OK(c, user)
}

func (h *Handler) update(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "name and a valid email are required", nil)
		return
	}
	user, err := h.Svc.Update(c.Request.Context(), User{
		ID:           c.Param("id"),
		Name:         req.Name,
		Email:        req.Email,
		Region:       req.Region,
		Rank:         req.Rank,
		FavoriteRole: req.FavoriteRole,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update user", nil)
		return
	}
	respond.OK(c, user)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete user", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
