package controller

import (
	"net/http"
	"strconv"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/service"
	apperrors "github.com/datanetra/msme-registry/internal/errors"
	"github.com/datanetra/msme-registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	businessService service.BusinessService
}

func NewBusinessController(businessService service.BusinessService) *BusinessController {
	return &BusinessController{businessService: businessService}
}

// AddBusinessRequest binds the profile form. Numeric fields arrive as text
// and are parsed explicitly so each failure names its field.
type AddBusinessRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Company  string `form:"company" binding:"required"`
	Type     string `form:"type"`
	Years    string `form:"years"`
	Turnover string `form:"turnover"`
	State    string `form:"state"`
	City     string `form:"city"`
}

// ShowForm renders the business profile form.
// GET /add_business_form
func (ctrl *BusinessController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "business_form.html", gin.H{
		"Types":  model.BusinessTypes(),
		"States": model.States(),
	})
}

// Add handles business profile creation.
// POST /add_business
func (ctrl *BusinessController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddBusinessRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("Invalid add business request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "user_id and company are required")
		return
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "user_id must be a number")
		return
	}

	years := 0
	if req.Years != "" {
		years, err = strconv.Atoi(req.Years)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "years must be a whole number")
			return
		}
	}

	turnover := 0.0
	if req.Turnover != "" {
		turnover, err = strconv.ParseFloat(req.Turnover, 64)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "turnover must be a number")
			return
		}
	}

	profile, err := ctrl.businessService.Create(uint(userID), req.Company, req.Type, years, turnover, req.State, req.City)
	if err != nil {
		log.Error("Failed to add business profile", err, map[string]interface{}{
			"company_name": req.Company,
		})
		apperrors.ParseAndRespond(c, err, "add business")
		return
	}

	log.Info("Business profile added", map[string]interface{}{
		"business_id": profile.ID,
		"user_id":     profile.UserID,
	})

	c.HTML(http.StatusCreated, "confirm.html", gin.H{
		"Message": "Business Added",
	})
}

// List renders every business profile, newest first.
// GET /view_business
func (ctrl *BusinessController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profiles, err := ctrl.businessService.List()
	if err != nil {
		log.Error("Failed to list business profiles", err)
		apperrors.ParseAndRespond(c, err, "list businesses")
		return
	}

	c.HTML(http.StatusOK, "business.html", gin.H{
		"Profiles": profiles,
	})
}
