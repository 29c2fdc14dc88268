package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/service"
	apperrors "github.com/datanetra/msme-registry/internal/errors"
	"github.com/datanetra/msme-registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	verificationService service.VerificationService
}

func NewVerificationController(verificationService service.VerificationService) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

// AddVerificationRequest carries the non-file parts of the multipart form.
// user_id is bound as text and parsed explicitly so a non-numeric value is a
// field-specific validation error, not a generic binding failure.
type AddVerificationRequest struct {
	UserID string `form:"user_id" binding:"required"`
	Udyam  string `form:"udyam" binding:"required"`
	Status string `form:"status"`
}

// ShowForm renders the verification submission form.
// GET /add_msme_form
func (ctrl *VerificationController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "msme_form.html", gin.H{
		"DefaultStatus": model.StatusPending,
	})
}

// Add handles a verification submission with its certificate upload.
// POST /add_msme
func (ctrl *VerificationController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddVerificationRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("Invalid add verification request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "user_id and udyam are required")
		return
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "user_id must be a number")
		return
	}

	fileHeader, err := c.FormFile("certificate")
	if err != nil {
		log.Warn("Verification submitted without certificate file", map[string]interface{}{
			"udyam_number": req.Udyam,
		})
		apperrors.BadRequest(c, apperrors.UploadFileMissing, "A certificate image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded certificate", err, map[string]interface{}{
			"file_name": fileHeader.Filename,
		})
		apperrors.BadRequest(c, apperrors.UploadFailed, "The uploaded file could not be read")
		return
	}
	defer file.Close()

	record, err := ctrl.verificationService.Submit(uint(userID), req.Udyam, req.Status, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrUdyamAlreadyExists) {
			apperrors.Conflict(c, apperrors.VerificationUdyamExists, "This Udyam number is already registered")
			return
		}
		log.Error("Failed to add verification record", err, map[string]interface{}{
			"udyam_number": req.Udyam,
		})
		apperrors.ParseAndRespond(c, err, "submit verification")
		return
	}

	log.Info("Verification record added", map[string]interface{}{
		"verification_id": record.ID,
		"user_id":         record.UserID,
	})

	c.HTML(http.StatusCreated, "confirm.html", gin.H{
		"Message": "MSME Record Added",
	})
}

// List renders every verification record, newest first. The certificate cell
// points at the image route; the stored path itself is never rendered.
// GET /view_msme
func (ctrl *VerificationController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	records, err := ctrl.verificationService.List()
	if err != nil {
		log.Error("Failed to list verification records", err)
		apperrors.ParseAndRespond(c, err, "list verifications")
		return
	}

	c.HTML(http.StatusOK, "msme.html", gin.H{
		"Records": records,
	})
}

// Certificate streams the stored certificate image for a record.
// GET /certificate/:id
func (ctrl *VerificationController) Certificate(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "id must be a number")
		return
	}

	path, err := ctrl.verificationService.CertificatePath(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			apperrors.NotFound(c, apperrors.VerificationNotFound, "Verification record not found")
			return
		}
		if errors.Is(err, service.ErrCertificateNotFound) {
			apperrors.NotFound(c, apperrors.CertificateNotFound, "Certificate file not found")
			return
		}
		log.Error("Failed to resolve certificate", err, map[string]interface{}{
			"verification_id": id,
		})
		apperrors.ParseAndRespond(c, err, "fetch certificate")
		return
	}

	c.File(path)
}
