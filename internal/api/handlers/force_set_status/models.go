package force_set_status

// ForceSetStatusRequest HTTP request model
type ForceSetStatusRequest struct {
	Status string `json:"status"`
}
