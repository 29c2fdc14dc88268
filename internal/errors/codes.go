package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL. Clients map these
// to their own copy; the message field is a human-readable fallback.

const (
	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // missing or malformed field
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // non-numeric id
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field absent

	// Resources
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Users
	UserEmailExists = "USER_EMAIL_EXISTS"
	UserNotFound    = "USER_NOT_FOUND"

	// Verification records
	VerificationUdyamExists = "VERIFICATION_UDYAM_EXISTS"
	VerificationNotFound    = "VERIFICATION_NOT_FOUND"
	CertificateNotFound     = "CERTIFICATE_NOT_FOUND"

	// Uploads
	UploadFileMissing = "UPLOAD_FILE_MISSING"
	UploadFailed      = "UPLOAD_FAILED"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
