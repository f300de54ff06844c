package dto

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// SelectOrganizationRequest documents the organization picker form
type SelectOrganizationRequest struct {
	OrganizationID string `json:"organization_id" form:"organization_id"`
}

// RecipientStatusRequest documents a recipient status change
type RecipientStatusRequest struct {
	Status string `json:"status" form:"status" example:"read"`
}
