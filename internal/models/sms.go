package models

// PermissionResult is the outcome of an SMS receive-permission request
type PermissionResult string

const (
	PermissionGranted     PermissionResult = "granted"
	PermissionDenied      PermissionResult = "denied"
	PermissionUnavailable PermissionResult = "unavailable"
)

// CacheSnapshot is a consistent view of the expense cache for presentation
type CacheSnapshot struct {
	Expenses  []Expense `json:"expenses"`
	IsLoading bool      `json:"isLoading"`
	LastError string    `json:"lastError,omitempty"`
}
