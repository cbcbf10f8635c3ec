package get_available_slots

import "fmt"

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive, got %d", ErrInvalidInput, req.ResourceID)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive, got %d", ErrInvalidInput, req.ServiceID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
