package errors

// ExitCodeFor determines the appropriate process exit code for an error.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	te, ok := err.(*TxxtError)
	if !ok {
		return 1
	}
	switch te.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryUnsupported:
		return 3 // Wrong file type, nothing was touched
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryStructure, CategoryReference, CategoryFileSystem:
		return 11 // Document processing error
	case CategoryDaemon:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}
