package controller

import (
	"fmt"
	"net/http"

	"github.com/datanetra/msme-registry/internal/app/service"
	apperrors "github.com/datanetra/msme-registry/internal/errors"
	"github.com/datanetra/msme-registry/internal/export"
	"github.com/datanetra/msme-registry/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController streams xlsx dumps of the three tables.
type ExportController struct {
	userService         service.UserService
	verificationService service.VerificationService
	businessService     service.BusinessService
}

func NewExportController(
	userService service.UserService,
	verificationService service.VerificationService,
	businessService service.BusinessService,
) *ExportController {
	return &ExportController{
		userService:         userService,
		verificationService: verificationService,
		businessService:     businessService,
	}
}

// Users exports the users table.
// GET /export/users.xlsx
func (ctrl *ExportController) Users(c *gin.Context) {
	users, err := ctrl.userService.List()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "list users")
		return
	}

	f, err := export.UsersWorkbook(users)
	if err != nil {
		apperrors.ParseAndRespond(c, err, "export users")
		return
	}
	ctrl.send(c, f, "users.xlsx")
}

// Verifications exports the msme_verification table.
// GET /export/msme.xlsx
func (ctrl *ExportController) Verifications(c *gin.Context) {
	records, err := ctrl.verificationService.List()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "list verifications")
		return
	}

	f, err := export.VerificationsWorkbook(records)
	if err != nil {
		apperrors.ParseAndRespond(c, err, "export verifications")
		return
	}
	ctrl.send(c, f, "msme.xlsx")
}

// Businesses exports the business_profiles table.
// GET /export/business.xlsx
func (ctrl *ExportController) Businesses(c *gin.Context) {
	profiles, err := ctrl.businessService.List()
	if err != nil {
		apperrors.ParseAndRespond(c, err, "list businesses")
		return
	}

	f, err := export.BusinessesWorkbook(profiles)
	if err != nil {
		apperrors.ParseAndRespond(c, err, "export businesses")
		return
	}
	ctrl.send(c, f, "business.xlsx")
}

func (ctrl *ExportController) send(c *gin.Context, f *excelize.File, filename string) {
	log := middleware.GetLoggerFromContext(c)

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is log.
		log.Error("Failed to stream xlsx export", err, map[string]interface{}{
			"filename": filename,
		})
	}
}
