package errors

// Convenience functions for the generator's failure modes

// UsageError reports a malformed command line. Nothing has been read or written yet.
func UsageError(message string) *DiagDocError {
	return New(CategoryUsage, SeverityFatal, message)
}

// OutputRootNotFound reports that no ancestor of start is named after the project.
func OutputRootNotFound(project, start string) *DiagDocError {
	return New(CategoryConfig, SeverityFatal, "tool must be run from inside the "+project+" repository").
		WithContext("project", project).
		WithContext("start", start)
}

func SourceReadError(path string, cause error) *DiagDocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to read diagnostic notes").
		WithContext("path", path)
}

func DestinationWriteError(path string, cause error) *DiagDocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to write documentation page").
		WithContext("path", path)
}

// VerificationFailed reports a generated page whose front matter does not
// read back the title it was given.
func VerificationFailed(path, want, got string) *DiagDocError {
	return New(CategoryValidation, SeverityFatal, "generated front matter does not round-trip").
		WithContext("path", path).
		WithContext("want_title", want).
		WithContext("got_title", got)
}

// UnexpectedHeaderKeys reports a generated page whose front matter has lost or
// gained fields.
func UnexpectedHeaderKeys(path string, missing, unexpected []string) *DiagDocError {
	return New(CategoryValidation, SeverityFatal, "generated front matter has unexpected fields").
		WithContext("path", path).
		WithContext("missing", missing).
		WithContext("unexpected", unexpected)
}

func InternalError(message string, cause error) *DiagDocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
