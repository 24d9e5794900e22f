package dynform

import "github.com/dmitrymomot/formkit/pkg/control"

// messageKey maps error codes to the casing used in error message maps.
func messageKey(code string) string {
	switch code {
	case "minlength":
		return "minLength"
	case "maxlength":
		return "maxLength"
	default:
		return code
	}
}

// ErrorMessages renders the messages for a control's current errors.
//
// For a leaf control every reported code with a template in the model's
// message map yields one message, rendered with that code's payload. Group
// and array controls yield at most one message: the model's first template,
// rendered against the model alone.
func (s *Service) ErrorMessages(c *control.Control, model *Model) []string {
	messages := []string{}
	if c == nil || model == nil {
		return messages
	}

	switch c.Kind() {
	case control.KindLeaf:
		for _, e := range c.Errors() {
			tmpl, ok := model.ErrorMessages.Get(messageKey(e.Code))
			if !ok {
				continue
			}
			messages = append(messages, Render(tmpl, model, e.Payload))
		}

	case control.KindGroup, control.KindArray:
		if _, tmpl, ok := model.ErrorMessages.First(); ok {
			messages = append(messages, Render(tmpl, model, nil))
		}
	}

	return messages
}
