package dynform

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// FieldMessages lists the rendered messages of one control.
type FieldMessages struct {
	Path     string   `json:"path"`
	Messages []string `json:"messages"`
}

// Result is the outcome of Check.
type Result struct {
	Valid  bool            `json:"valid"`
	Errors []FieldMessages `json:"errors"`
}

// Build turns a model tree into a control tree with resolved validators.
// Any unresolved validator aborts the build.
func (s *Service) Build(m *Model) (*control.Control, error) {
	return s.build(m, rootPath(m))
}

func (s *Service) build(m *Model, path string) (*control.Control, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	validators, err := s.Validators(m.Validators)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", path, err)
	}
	asyncValidators, err := s.AsyncValidators(m.AsyncValidators)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", path, err)
	}
	opts := []control.Option{
		control.WithValidators(validators...),
		control.WithAsyncValidators(asyncValidators...),
	}

	children := m.children()
	built := make([]*control.Control, 0, len(children))
	for i, child := range children {
		c, err := s.build(child, pathOf(path, child, i))
		if err != nil {
			return nil, err
		}
		built = append(built, c)
	}

	switch m.Kind() {
	case control.KindGroup:
		fields := make([]control.Field, 0, len(built))
		for i, c := range built {
			fields = append(fields, control.Field{Name: children[i].ID, Control: c})
		}
		return control.NewGroup(fields, opts...), nil
	case control.KindArray:
		return control.NewArray(built, opts...), nil
	default:
		return control.NewLeaf(m.Value, opts...), nil
	}
}

// Report collects the messages of every control in the tree that has errors,
// in depth-first order. c must have been built from m.
func (s *Service) Report(c *control.Control, m *Model) []FieldMessages {
	var out []FieldMessages
	s.report(c, m, rootPath(m), &out)
	if out == nil {
		out = []FieldMessages{}
	}
	return out
}

func (s *Service) report(c *control.Control, m *Model, path string, out *[]FieldMessages) {
	if c == nil || m == nil {
		return
	}

	if len(c.Errors()) > 0 {
		if msgs := s.ErrorMessages(c, m); len(msgs) > 0 {
			*out = append(*out, FieldMessages{Path: path, Messages: msgs})
		}
	}

	var controls []*control.Control
	switch c.Kind() {
	case control.KindGroup:
		for _, f := range c.Fields() {
			controls = append(controls, f.Control)
		}
	case control.KindArray:
		controls = c.Items()
	}

	children := m.children()
	for i := 0; i < len(controls) && i < len(children); i++ {
		s.report(controls[i], children[i], pathOf(path, children[i], i), out)
	}
}

// Check builds the form, validates it against the model values and reports
// the messages of failing controls.
func (s *Service) Check(ctx context.Context, m *Model) (Result, error) {
	c, err := s.Build(m)
	if err != nil {
		return Result{}, err
	}
	if err := c.Validate(ctx); err != nil {
		return Result{}, err
	}

	res := Result{Valid: c.Valid(), Errors: s.Report(c, m)}
	s.logger.DebugContext(ctx, "form checked",
		logger.Path(m.ID),
		logger.Valid(res.Valid),
		logger.Count(len(res.Errors)),
	)
	return res, nil
}

func rootPath(m *Model) string {
	if m == nil {
		return ""
	}
	return m.ID
}

// pathOf joins a child segment onto parent. Children without an ID are
// addressed by position.
func pathOf(parent string, m *Model, index int) string {
	seg := strconv.Itoa(index)
	if m != nil && m.ID != "" {
		seg = m.ID
	}
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}
