package models

// Placeholder description used when nothing readable is left of a transcript.
const DefaultDescription = "Expense"

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
