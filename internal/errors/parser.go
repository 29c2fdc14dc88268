package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the classified form of a lower-layer error.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

// ParseError converts database and IO errors into a status/code/message
// triple. It understands both backends: postgres reports constraint failures
// as "duplicate key ... unique constraint" / "foreign key constraint", sqlite
// as "UNIQUE constraint failed: table.column" / "FOREIGN KEY constraint
// failed".
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "An internal error occurred",
		}
	}

	errStr := err.Error()
	errLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Status:  http.StatusNotFound,
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}

	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{
			Status:  http.StatusConflict,
			Code:    UserNotFound,
			Message: "The referenced user does not exist",
		}
	}

	if strings.Contains(errLower, "null value") || strings.Contains(errLower, "not null constraint") {
		return ErrorInfo{
			Status:  http.StatusBadRequest,
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalDatabaseError,
			Message: "The data store is unreachable. Please try again later",
		}
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Status:  http.StatusConflict,
			Code:    UserEmailExists,
			Message: "This email is already registered",
		}
	}
	if strings.Contains(errLower, "udyam_number") {
		return ErrorInfo{
			Status:  http.StatusConflict,
			Code:    VerificationUdyamExists,
			Message: "This Udyam number is already registered",
		}
	}
	return ErrorInfo{
		Status:  http.StatusConflict,
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "user") {
		return "User not found"
	}
	if strings.Contains(contextLower, "certificate") || strings.Contains(contextLower, "verification") {
		return "Verification record not found"
	}
	if strings.Contains(contextLower, "business") {
		return "Business profile not found"
	}
	return "The requested record was not found"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") || strings.Contains(contextLower, "add") || strings.Contains(contextLower, "submit") {
		return "The record could not be saved. Please try again later"
	}
	if strings.Contains(contextLower, "list") {
		return "The records could not be loaded. Please try again later"
	}
	return "An internal error occurred. Please try again later"
}
