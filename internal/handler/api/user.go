package api

import (
	"net/http"

	reqdto "rentloop/internal/handler/dto/request"
	resdto "rentloop/internal/handler/dto/response"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// @Summary Identify user
// @Description Gateway registers or refreshes a user profile and receives the user's API token
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Gateway-Token header string true "Shared gateway token"
// @Param request body reqdto.IdentifyRequest true "User profile"
// @Success 200 {object} resdto.IdentifyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/identify [post]
func (h *UserHandler) Identify(c *gin.Context) {
	var req reqdto.IdentifyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, rm, err := h.userUseCase.Identify(c.Request.Context(), req.ID, req.Username, req.FirstName, req.LastName, req.OwnerHandle)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.IdentifyResponse{
		Token: token,
		User:  resdto.FromUserRM(rm),
	})
}

// @Summary Current user
// @Description Get the caller's stored profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rm, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserRM(rm))
}

// @Summary Update profile
// @Description Upsert the caller's username and owner handle
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	_, rm, err := h.userUseCase.Identify(c.Request.Context(), userID, req.Username, req.FirstName, req.LastName, req.OwnerHandle)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserRM(rm))
}
