package v1

import (
	"net/http"

	"go-cv-backend/internal/delivery/http/response"
	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	typeUC    domain.ContactTypeUsecase
}

func NewContactHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase, typeUC domain.ContactTypeUsecase) {
	handler := &ContactHandler{contactUC: contactUC, typeUC: typeUC}

	contacts := protected.Group("/contacts")
	{
		contacts.GET("", handler.List)
		contacts.GET("/:id", handler.Get)
		contacts.POST("", handler.Create)
		contacts.PUT("/:id", handler.Update)
		contacts.DELETE("/:id", handler.Delete)
	}

	types := protected.Group("/contact-types")
	{
		types.GET("", handler.ListTypes)
		types.GET("/:id", handler.GetType)
		types.POST("", handler.CreateType)
		types.PUT("/:id", handler.UpdateType)
		types.DELETE("/:id", handler.DeleteType)
	}
}

type contactRequest struct {
	Contact       string `json:"contact" binding:"required"`
	CandidateID   int64  `json:"candidate_id" binding:"required"`
	ContactTypeID int64  `json:"contact_type_id" binding:"required"`
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact list", contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	contact, err := h.contactUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact details", contact)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	contact := &domain.Contact{
		Contact:       req.Contact,
		CandidateID:   req.CandidateID,
		ContactTypeID: req.ContactTypeID,
	}
	if err := h.contactUC.Create(c, contact); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact created", contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	contact := &domain.Contact{
		ID:            id,
		Contact:       req.Contact,
		CandidateID:   req.CandidateID,
		ContactTypeID: req.ContactTypeID,
	}
	if err := h.contactUC.Update(c, contact); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact updated", contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.contactUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact deleted", nil)
}

type contactTypeRequest struct {
	ContactType string `json:"contact_type" binding:"required"`
}

func (h *ContactHandler) ListTypes(c *gin.Context) {
	types, err := h.typeUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact type list", types)
}

func (h *ContactHandler) GetType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ct, err := h.typeUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact type details", ct)
}

func (h *ContactHandler) CreateType(c *gin.Context) {
	var req contactTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ct := &domain.ContactType{ContactType: req.ContactType}
	if err := h.typeUC.Create(c, ct); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact type created", ct)
}

func (h *ContactHandler) UpdateType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req contactTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ct := &domain.ContactType{ID: id, ContactType: req.ContactType}
	if err := h.typeUC.Update(c, ct); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact type updated", ct)
}

func (h *ContactHandler) DeleteType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.typeUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact type deleted", nil)
}
