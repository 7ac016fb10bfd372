package models

import "time"

// FrequentOrder is a reusable order preset. A nil OwnerUserID makes it
// global (visible to every operator); deletion is a soft deactivation.
type FrequentOrder struct {
	ID          int              `json:"id"`
	Label       string           `json:"label"`
	OwnerUserID *int             `json:"owner_user_id"`
	IsGlobal    bool             `json:"is_global"`
	Items       []OrderItemInput `json:"items"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
}

type CreateFrequentOrderRequest struct {
	Label       string           `json:"label"`
	OwnerUserID *int             `json:"owner_user_id"`
	Items       []OrderItemInput `json:"items"`
}

type UpdateFrequentOrderRequest struct {
	Label *string           `json:"label,omitempty"`
	Items *[]OrderItemInput `json:"items,omitempty"`
}
