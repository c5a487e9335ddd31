package catalog

import (
	"errors"
	"net/http"

	"talentbook/internal/pkg/response"
	"talentbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for the service catalog.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterTalentRoutes mounts the talent-facing catalog endpoints; the group
// must already be guarded by Authenticate + RequireRole(talent).
func (h *Handler) RegisterTalentRoutes(talent *gin.RouterGroup) {
	talent.GET("/services", h.ListOwnServices)
	talent.POST("/add_service", h.AddService)
	talent.DELETE("/remove_service", h.RemoveService)
	talent.PUT("/update_service", h.UpdateService)
}

// RegisterClientRoutes mounts the read-only catalog views for clients.
func (h *Handler) RegisterClientRoutes(client *gin.RouterGroup) {
	client.GET("/get_talents", h.GetTalents)
	client.GET("/get_talent_services", h.GetTalentServices)
}

func (h *Handler) ListOwnServices(c *gin.Context) {
	talentID := c.GetInt64("user_id")

	services, err := h.service.ListOwnServices(c.Request.Context(), talentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) AddService(c *gin.Context) {
	talentID := c.GetInt64("user_id")

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	svc, err := h.service.AddService(c.Request.Context(), talentID, req.ServiceAttrs)
	if err != nil {
		if errors.Is(err, ErrAdvancePaymentTerms) {
			response.ValidationErrors(c, map[string]string{"advance_payment_value": "required_if"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to add service")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":  true,
		"message": "Service added successfully",
		"service": svc,
	})
}

func (h *Handler) UpdateService(c *gin.Context) {
	talentID := c.GetInt64("user_id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), talentID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrAdvancePaymentTerms):
			response.ValidationErrors(c, map[string]string{"advance_payment_value": "required_if"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":  true,
		"message": "Service updated successfully",
		"service": svc,
	})
}

func (h *Handler) RemoveService(c *gin.Context) {
	talentID := c.GetInt64("user_id")

	var req RemoveServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	if err := h.service.RemoveService(c.Request.Context(), talentID, req.ServiceID); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to remove service")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":  true,
		"message": "Service removed successfully",
	})
}

func (h *Handler) GetTalents(c *gin.Context) {
	talents, err := h.service.ListTalents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list talents")
		return
	}

	out := make([]TalentPublic, 0, len(talents))
	for _, t := range talents {
		out = append(out, toTalentPublic(t))
	}

	response.JSON(c, http.StatusOK, gin.H{"talents": out})
}

func (h *Handler) GetTalentServices(c *gin.Context) {
	req := TalentServicesRequest{TalentStageName: c.Query("talent_stage_name")}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	services, err := h.service.GetServicesByTalent(c.Request.Context(), req.TalentStageName)
	if err != nil {
		if errors.Is(err, ErrTalentNotFound) {
			// Unknown stage name reads as a validation failure, matching the
			// exists-rule on the request field.
			response.ValidationErrors(c, map[string]string{"talent_stage_name": "exists"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"services": services})
}
