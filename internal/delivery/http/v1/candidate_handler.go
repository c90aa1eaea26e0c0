package v1

import (
	"fmt"
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	cvUC        domain.CVUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, cvUC domain.CVUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, cvUC: cvUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)

		candidates.GET("/:id/cv", handler.CV)
		candidates.GET("/:id/cv/pdf", handler.CVPDF)
		candidates.POST("/:id/cv/email", handler.CVEmail)
	}

	// Read-only consolidated view.
	summaries := protected.Group("/candidate-summaries")
	{
		summaries.GET("", handler.Summaries)
		summaries.GET("/:id", handler.Summary)
	}
}

type candidateRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate list", candidates)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	candidate, err := h.candidateUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var req candidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := &domain.Candidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if userID, ok := c.Get(string(domain.KeyUserID)); ok {
		if id, ok := userID.(int64); ok {
			candidate.CreatedBy = &id
		}
	}

	if err := h.candidateUC.Create(c, candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req candidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate := &domain.Candidate{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.candidateUC.Update(c, candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.candidateUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

func (h *CandidateHandler) Summaries(c *gin.Context) {
	summaries, err := h.candidateUC.Summaries(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate summaries", summaries)
}

func (h *CandidateHandler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	summary, err := h.candidateUC.Summary(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate summary", summary)
}

// CV returns the assembled display context, translated when ?language= is
// set. Translation failures still return 200 with error_message populated.
func (h *CandidateHandler) CV(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dc, err := h.cvUC.DisplayContext(c, id, c.Query("language"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV details", dc)
}

func (h *CandidateHandler) CVPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, filename, err := h.cvUC.RenderPDF(c, id, c.Query("language"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

type cvEmailRequest struct {
	Email    string `json:"email" binding:"required"`
	Language string `json:"language"`
}

func (h *CandidateHandler) CVEmail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cvEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	taskID, err := h.cvUC.EmailPDF(c, id, req.Language, req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "CV email queued for delivery", gin.H{
		"task_id": taskID,
	})
}
