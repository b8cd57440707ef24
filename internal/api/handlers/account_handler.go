package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/forms"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type AccountHandler struct {
	forms *forms.Controller
}

func NewAccountHandler(f *forms.Controller) *AccountHandler {
	return &AccountHandler{forms: f}
}

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Signup is unauthenticated: it is how recruiters get an account in the
// first place. The form result always carries user-facing text.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AccountHandler.Signup", "invalid request body", err))
		return
	}

	res := h.forms.SubmitSignup(c.Request.Context(), forms.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})

	status := http.StatusOK
	if res.Message == forms.MessageSuccess {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}
