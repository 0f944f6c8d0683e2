// Package form keeps the state of a credential-collection form: the ordered
// field schema, current values and the derived visibility of each field.
package form

import (
	"fmt"

	"github.com/monkedo/connect-go/schema"
)

// Visibility is the derived display state of a single field.
type Visibility struct {
	Visible  bool
	Required bool
}

// Form holds a rendered credential form for one (user, app) pair. The field
// schema is immutable for the lifetime of the form; values and visibility
// change as the user edits controlling fields.
type Form struct {
	userID     string
	appKey     string
	fields     []schema.FieldSpec
	byName     map[string]*schema.FieldSpec
	values     map[string]string
	visibility map[string]Visibility
}

// New validates the schema and builds the initial form state. Fields start
// with their schema-order defaults: select fields take their first option's
// value, and every dependent field's visibility is computed from its
// controlling field's current value, so dependents start in the correct
// state rather than all visible.
func New(userID, appKey string, fields []schema.FieldSpec) (*Form, error) {
	ret := &Form{
		userID:     userID,
		appKey:     appKey,
		fields:     fields,
		byName:     make(map[string]*schema.FieldSpec, len(fields)),
		values:     make(map[string]string, len(fields)),
		visibility: make(map[string]Visibility, len(fields)),
	}
	for i := range fields {
		field := &fields[i]
		if field.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if _, ok := ret.byName[field.Name]; ok {
			return nil, fmt.Errorf("duplicate field name %q", field.Name)
		}
		ret.byName[field.Name] = field
		ret.visibility[field.Name] = Visibility{Visible: true, Required: !field.IsOptional}
		if field.Type == schema.FieldSelect && len(field.Options) > 0 {
			ret.values[field.Name] = field.Options[0].Value
		}
	}
	for i := range fields {
		field := &fields[i]
		if field.ShowWhen == nil {
			continue
		}
		if _, ok := ret.byName[field.ShowWhen.Key]; !ok {
			return nil, fmt.Errorf("field %q references unknown field %q", field.Name, field.ShowWhen.Key)
		}
	}
	for name := range ret.controllingFields() {
		ret.recompute(name)
	}
	return ret, nil
}

// UserID returns the end user the form collects credentials for.
func (f *Form) UserID() string { return f.userID }

// AppKey returns the app the form collects credentials for.
func (f *Form) AppKey() string { return f.appKey }

// Fields returns the field schema in rendering order.
func (f *Form) Fields() []schema.FieldSpec { return f.fields }

// Visibility returns the derived display state of a field.
func (f *Form) Visibility(name string) (Visibility, bool) {
	v, ok := f.visibility[name]
	return v, ok
}

// Value returns the current value of a field.
func (f *Form) Value(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

// SetValue updates a field's value and recomputes the visibility of every
// field controlled by it.
func (f *Form) SetValue(name, value string) error {
	if _, ok := f.byName[name]; !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	f.values[name] = value
	f.recompute(name)
	return nil
}

// Values collects the submittable values: visible fields only. Hidden fields
// were already reset to empty on hide; excluding them here is the safety net.
func (f *Form) Values() map[string]any {
	ret := make(map[string]any, len(f.values))
	for _, field := range f.fields {
		if !f.visibility[field.Name].Visible {
			continue
		}
		if value, ok := f.values[field.Name]; ok {
			ret[field.Name] = value
		}
	}
	return ret
}

// recompute applies the showWhen rule of every field controlled by the named
// field. A field transitioning to hidden loses its required flag and its
// stored value, so a stale value is never submitted.
func (f *Form) recompute(name string) {
	current := f.values[name]
	for i := range f.fields {
		field := &f.fields[i]
		if field.ShowWhen == nil || field.ShowWhen.Key != name {
			continue
		}
		shown := field.ShowWhen.Matches(current)
		f.visibility[field.Name] = Visibility{
			Visible:  shown,
			Required: shown && !field.IsOptional,
		}
		if !shown {
			f.values[field.Name] = ""
		}
	}
}

// controllingFields returns the distinct fields referenced by some showWhen.
func (f *Form) controllingFields() map[string]bool {
	ret := map[string]bool{}
	for i := range f.fields {
		if sw := f.fields[i].ShowWhen; sw != nil {
			ret[sw.Key] = true
		}
	}
	return ret
}
