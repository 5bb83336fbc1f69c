package logging

// Field names shared by all log entries so output stays greppable.
const (
	FieldItemID      = "item_id"
	FieldCategory    = "category"
	FieldCostType    = "cost_type"
	FieldField       = "field"
	FieldDriverID    = "driver_id"
	FieldCount       = "count"
	FieldFile        = "file_path"
	FieldOutputFile  = "output_file"
	FieldFormat      = "format"
	FieldModel       = "model"
	FieldAttendees   = "attendees"
	FieldDuration    = "duration_ms"
	FieldDelimiter   = "delimiter"
	FieldBaseCount   = "base_attendees"
	FieldBasePrice   = "base_price"
	FieldLinkedCount = "linked_count"

	FieldPreviousDriverID = "previous_driver_id"
	FieldReplace          = "replace"
	FieldPromptLength     = "prompt_length"
	FieldAIEnabled        = "ai_enabled"
	FieldComponent        = "component"
)
