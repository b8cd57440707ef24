package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

const maxResumeUploadBytes = 10 << 20 // 10 MiB

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// UploadFile stores the raw resume file (multipart field "file") in the
// bucket and records its object path on the candidate.
func (h *ResumeHandler) UploadFile(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.UploadFile", "missing file field", err))
		return
	}
	if fileHeader.Size > maxResumeUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.UploadFile", "file too large", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ResumeHandler.UploadFile", "failed to open upload", err))
		return
	}
	defer f.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	path, err := h.svc.UploadFile(c.Request.Context(), c.Param("candidate_id"), fileHeader.Filename, mimeType, f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

// ListFiles enumerates the stored resume files for the candidate.
func (h *ResumeHandler) ListFiles(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	files, err := h.svc.ListFiles(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

type ResumeTextRequest struct {
	Resume string `json:"resume" binding:"required"`
}

// SetText replaces the candidate's resume text and refreshes its embedding.
func (h *ResumeHandler) SetText(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req ResumeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.SetText", "invalid request body", err))
		return
	}

	if err := h.svc.SetResumeText(c.Request.Context(), c.Param("candidate_id"), req.Resume); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
