package carousel

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPayload is returned when the embedded project list is not
// valid JSON of the expected shape
var ErrMalformedPayload = errors.New("carousel: malformed gallery payload")

// LoadProjects parses the raw payload text. Blank text yields an empty list.
func LoadProjects(raw string) ([]Project, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var projects []Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return projects, nil
}
