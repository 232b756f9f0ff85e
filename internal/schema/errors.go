package schema

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single violated constraint.
type FieldError struct {
	Source     string
	Path       string
	Constraint string
}

func (e FieldError) String() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Constraint)
	return b.String()
}

// ValidationError reports every constraint a record (or a whole catalog) violates.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "validation failed: " + e.Problems[0].String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed with %d problems:", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n  ")
		b.WriteString(p.String())
	}
	return b.String()
}

type problems struct {
	list []FieldError
}

func (p *problems) add(path, format string, args ...any) {
	p.list = append(p.list, FieldError{Path: path, Constraint: fmt.Sprintf(format, args...)})
}

func (p *problems) merge(source string, err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Problems {
			if fe.Source == "" {
				fe.Source = source
			}
			p.list = append(p.list, fe)
		}
		return
	}
	p.list = append(p.list, FieldError{Source: source, Constraint: err.Error()})
}

func (p *problems) err() error {
	if len(p.list) == 0 {
		return nil
	}
	return &ValidationError{Problems: p.list}
}
