package get_available_karts

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.LapCount <= 0 {
		return fmt.Errorf("%w: laps must be positive", ErrInvalidInput)
	}

	return nil
}
