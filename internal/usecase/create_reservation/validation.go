package create_reservation

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TitularEmail) == "" {
		return fmt.Errorf("%w: titular email is required", ErrInvalidInput)
	}

	if len(normalizeEmails(req.ParticipantEmails)) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}

	if req.LapCount <= 0 {
		return fmt.Errorf("%w: lapCount must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return nil
}

// normalizeEmails приводит адреса к нижнему регистру и убирает пустые и повторяющиеся, сохраняя порядок
func normalizeEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	result := make([]string, 0, len(emails))

	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		result = append(result, e)
	}

	return result
}
