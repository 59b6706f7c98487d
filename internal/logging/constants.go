package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the extraction pipeline,
// making logs easier to parse, filter, and analyze.
const (
	FieldStrategy   = "strategy"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldAmountText = "amount_text"
	FieldPattern    = "pattern"
	FieldDate       = "date"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldScore      = "score"
	FieldModel      = "model"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
