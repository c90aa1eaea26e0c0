package v1

import (
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
	linkUC    domain.CandidateProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase, linkUC domain.CandidateProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC, linkUC: linkUC}

	projects := protected.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/:id", handler.Get)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}

	links := protected.Group("/candidate-projects")
	{
		links.GET("", handler.ListLinks)
		links.GET("/:id", handler.GetLink)
		links.POST("", handler.CreateLink)
		links.PUT("/:id", methodNotAllowed("Candidate projects"))
		links.PATCH("/:id", methodNotAllowed("Candidate projects"))
		links.DELETE("/:id", handler.DeleteLink)
	}
}

type projectRequest struct {
	ProjectName        string `json:"project_name" binding:"required"`
	ProjectDescription string `json:"project_description" binding:"required"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project list", projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projectUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project details", project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := &domain.Project{
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
	}
	if err := h.projectUC.Create(c, project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project := &domain.Project{
		ID:                 id,
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
	}
	if err := h.projectUC.Update(c, project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.projectUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}

type candidateProjectRequest struct {
	CandidateID int64 `json:"candidate_id" binding:"required"`
	ProjectID   int64 `json:"project_id" binding:"required"`
}

func (h *ProjectHandler) ListLinks(c *gin.Context) {
	links, err := h.linkUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate project list", links)
}

func (h *ProjectHandler) GetLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	link, err := h.linkUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate project details", link)
}

func (h *ProjectHandler) CreateLink(c *gin.Context) {
	var req candidateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	link := &domain.CandidateProject{CandidateID: req.CandidateID, ProjectID: req.ProjectID}
	if err := h.linkUC.Create(c, link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate project created", link)
}

func (h *ProjectHandler) DeleteLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	projectDeleted, err := h.linkUC.Delete(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate project deleted", gin.H{
		"project_deleted": projectDeleted,
	})
}
