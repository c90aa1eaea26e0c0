package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-cv-backend/internal/delivery/http/middleware"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

func newTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Association resources are create/read/delete only.
func TestAssociationUpdateNotAllowed(t *testing.T) {
	r := newTestEngine()
	group := r.Group("/v1")

	stub := &stubCandidateSkillUC{}
	NewSkillHandler(group, &stubSkillUC{}, stub)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		req := httptest.NewRequest(method, "/v1/candidate-skills/1", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "cannot be updated")
	}
}

func TestAssociationDeleteReportsOrphanCleanup(t *testing.T) {
	r := newTestEngine()
	group := r.Group("/v1")

	stub := &stubCandidateSkillUC{skillDeleted: true}
	NewSkillHandler(group, &stubSkillUC{}, stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/candidate-skills/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), stub.deletedID)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"skill_deleted":true`)
}

func TestInvalidPathID(t *testing.T) {
	r := newTestEngine()
	group := r.Group("/v1")
	NewSkillHandler(group, &stubSkillUC{}, &stubCandidateSkillUC{})

	req := httptest.NewRequest(http.MethodGet, "/v1/skills/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Stubs

type stubSkillUC struct{}

func (s *stubSkillUC) List(ctx context.Context) ([]domain.Skill, error) {
	return []domain.Skill{}, nil
}
func (s *stubSkillUC) Get(ctx context.Context, id int64) (*domain.Skill, error) {
	return &domain.Skill{ID: id, SkillName: "Python"}, nil
}
func (s *stubSkillUC) Create(ctx context.Context, skill *domain.Skill) error { return nil }
func (s *stubSkillUC) Update(ctx context.Context, skill *domain.Skill) error { return nil }
func (s *stubSkillUC) Delete(ctx context.Context, id int64) error            { return nil }

type stubCandidateSkillUC struct {
	skillDeleted bool
	deletedID    int64
}

func (s *stubCandidateSkillUC) List(ctx context.Context) ([]domain.CandidateSkill, error) {
	return []domain.CandidateSkill{}, nil
}
func (s *stubCandidateSkillUC) Get(ctx context.Context, id int64) (*domain.CandidateSkill, error) {
	return &domain.CandidateSkill{ID: id}, nil
}
func (s *stubCandidateSkillUC) Create(ctx context.Context, link *domain.CandidateSkill) error {
	return nil
}
func (s *stubCandidateSkillUC) Delete(ctx context.Context, id int64) (bool, error) {
	s.deletedID = id
	return s.skillDeleted, nil
}
