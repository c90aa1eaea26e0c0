package v1

import (
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BioItemHandler struct {
	bioUC domain.BioItemUsecase
}

func NewBioItemHandler(protected *gin.RouterGroup, bioUC domain.BioItemUsecase) {
	handler := &BioItemHandler{bioUC: bioUC}

	bios := protected.Group("/bio-items")
	{
		bios.GET("", handler.List)
		bios.GET("/:id", handler.Get)
		bios.POST("", handler.Create)
		bios.PUT("/:id", handler.Update)
		bios.DELETE("/:id", handler.Delete)
	}
}

type bioItemRequest struct {
	BioItem     string `json:"bio_item" binding:"required"`
	CandidateID int64  `json:"candidate_id" binding:"required"`
}

func (h *BioItemHandler) List(c *gin.Context) {
	bios, err := h.bioUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bio item list", bios)
}

func (h *BioItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bio, err := h.bioUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bio item details", bio)
}

func (h *BioItemHandler) Create(c *gin.Context) {
	var req bioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	bio := &domain.BioItem{BioItem: req.BioItem, CandidateID: req.CandidateID}
	if err := h.bioUC.Create(c, bio); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Bio item created", bio)
}

func (h *BioItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req bioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	bio := &domain.BioItem{ID: id, BioItem: req.BioItem, CandidateID: req.CandidateID}
	if err := h.bioUC.Update(c, bio); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bio item updated", bio)
}

func (h *BioItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.bioUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bio item deleted", nil)
}
