package fields

import "fmt"

// RegistryError reports a grouped search term the registry refused.
type RegistryError struct {
	Term     string
	Location string
	Reason   string
}

func (e *RegistryError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("grouped search term %q: %s %q", e.Term, e.Reason, e.Location)
	}
	return fmt.Sprintf("grouped search term %q: %s", e.Term, e.Reason)
}
