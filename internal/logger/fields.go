package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// Standard tracing fields, propagated through the call chain via context.
const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldRecordID is the job record ID being operated on
	FieldRecordID = "record_id"

	// FieldCompany is the company name on the record
	FieldCompany = "company"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldImportSource is the legacy import source identifier
	FieldImportSource = "import_source"
)

// Standard metric fields, attached at the log entry for aggregation.
const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldCount is a generic count field
	FieldCount = "count"

	// FieldSize is the data size in bytes
	FieldSize = "size"

	// FieldStatus is the operation status
	FieldStatus = "status"
)
