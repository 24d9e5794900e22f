package control

// Payload describes a single validation failure. Keys are read by message
// templates, e.g. "requiredLength" for minlength failures.
type Payload map[string]any

// Property returns the named payload value.
func (p Payload) Property(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[name]
	return v, ok
}

// Error is a single validation failure reported by a validator.
type Error struct {
	Code    string
	Payload Payload
}

// Errors is an ordered set of validation failures keyed by code.
// A nil Errors means the control is valid.
type Errors []Error

// NewErrors builds Errors from a single code and payload.
func NewErrors(code string, payload Payload) Errors {
	return Errors{{Code: code, Payload: payload}}
}

// Has reports whether code is present.
func (e Errors) Has(code string) bool {
	_, ok := e.Get(code)
	return ok
}

// Get returns the payload for code.
func (e Errors) Get(code string) (Payload, bool) {
	for _, err := range e {
		if err.Code == code {
			return err.Payload, true
		}
	}
	return nil, false
}

// Codes returns error codes in reported order.
func (e Errors) Codes() []string {
	codes := make([]string, 0, len(e))
	for _, err := range e {
		codes = append(codes, err.Code)
	}
	return codes
}

// Merge returns e with other appended. A code already present keeps its
// position and takes the newer payload.
func (e Errors) Merge(other Errors) Errors {
	if len(other) == 0 {
		return e
	}

	merged := make(Errors, len(e), len(e)+len(other))
	copy(merged, e)

	for _, err := range other {
		replaced := false
		for i := range merged {
			if merged[i].Code == err.Code {
				merged[i].Payload = err.Payload
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, err)
		}
	}

	return merged
}
