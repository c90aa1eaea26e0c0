package v1

import (
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
	linkUC  domain.CandidateSkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase, linkUC domain.CandidateSkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC, linkUC: linkUC}

	skills := protected.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/:id", handler.Get)
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}

	// Association resource: create/read/delete only.
	links := protected.Group("/candidate-skills")
	{
		links.GET("", handler.ListLinks)
		links.GET("/:id", handler.GetLink)
		links.POST("", handler.CreateLink)
		links.PUT("/:id", methodNotAllowed("Candidate skills"))
		links.PATCH("/:id", methodNotAllowed("Candidate skills"))
		links.DELETE("/:id", handler.DeleteLink)
	}
}

type skillRequest struct {
	SkillName string `json:"skill_name" binding:"required"`
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill list", skills)
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	skill, err := h.skillUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill details", skill)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{SkillName: req.SkillName}
	if err := h.skillUC.Create(c, skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{ID: id, SkillName: req.SkillName}
	if err := h.skillUC.Update(c, skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.skillUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

type candidateSkillRequest struct {
	CandidateID int64 `json:"candidate_id" binding:"required"`
	SkillID     int64 `json:"skill_id" binding:"required"`
}

func (h *SkillHandler) ListLinks(c *gin.Context) {
	links, err := h.linkUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate skill list", links)
}

func (h *SkillHandler) GetLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	link, err := h.linkUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate skill details", link)
}

func (h *SkillHandler) CreateLink(c *gin.Context) {
	var req candidateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	link := &domain.CandidateSkill{CandidateID: req.CandidateID, SkillID: req.SkillID}
	if err := h.linkUC.Create(c, link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate skill created", link)
}

func (h *SkillHandler) DeleteLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	skillDeleted, err := h.linkUC.Delete(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate skill deleted", gin.H{
		"skill_deleted": skillDeleted,
	})
}
