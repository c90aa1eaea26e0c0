package v1

import (
	"net/http"

	"go-cv-backend/internal/delivery/http/middleware"
	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	CandidateUC        domain.CandidateUsecase
	BioItemUC          domain.BioItemUsecase
	SkillUC            domain.SkillUsecase
	CandidateSkillUC   domain.CandidateSkillUsecase
	ProjectUC          domain.ProjectUsecase
	CandidateProjectUC domain.CandidateProjectUsecase
	ContactUC          domain.ContactUsecase
	ContactTypeUC      domain.ContactTypeUsecase
	CVUC               domain.CVUsecase
	AuditUC            domain.RequestLogUsecase
	Tokens             *auth.TokenManager
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestLogger(deps.AuditUC))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewAuthHandler(v1, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewCandidateHandler(protected, deps.CandidateUC, deps.CVUC)
		NewBioItemHandler(protected, deps.BioItemUC)
		NewSkillHandler(protected, deps.SkillUC, deps.CandidateSkillUC)
		NewProjectHandler(protected, deps.ProjectUC, deps.CandidateProjectUC)
		NewContactHandler(protected, deps.ContactUC, deps.ContactTypeUC)
		NewAuditHandler(protected, deps.AuditUC)
	}

	return r
}
