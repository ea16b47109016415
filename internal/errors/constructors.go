package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *TxxtError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *TxxtError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Document errors

func UnsupportedDocument(path string) *TxxtError {
	return New(CategoryUnsupported, SeverityWarning, "not a txxt document").
		WithContext("path", path)
}

func ReadError(path string, cause error) *TxxtError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "cannot read document").
		WithContext("path", path)
}

func WriteError(path string, cause error) *TxxtError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "cannot write document").
		WithContext("path", path)
}

// Daemon errors

func DaemonError(message string, cause error) *TxxtError {
	return Wrap(cause, CategoryDaemon, SeverityError, message)
}

// Internal errors

func InternalError(message string, cause error) *TxxtError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
