package domain

import "time"

type Action string

const (
	ActionCreate          Action = "CREATE"
	ActionUpdate          Action = "UPDATE"
	ActionArchive         Action = "ARCHIVE"
	ActionRestore         Action = "RESTORE"
	ActionPermanentDelete Action = "PERMANENT_DELETE"
	ActionSettingsUpdate  Action = "SETTINGS_UPDATE"
)

type Entity string

const (
	EntityProduct  Entity = "Product"
	EntityOrder    Entity = "Order"
	EntityCustomer Entity = "Customer"
	EntitySettings Entity = "Settings"
)

// Entry is an immutable record of one successful mutating action.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserEmail string    `json:"user_email"`
	Action    Action    `json:"action"`
	Entity    Entity    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Details   string    `json:"details"`
}
