package schema

// Status reports a user's connection state for a single app key.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusNotConnected Status = "not-connected"
	StatusInvalid      Status = "invalid"
)

// ConnectionRequest describes a single connect attempt. It is constructed per
// ConnectApp call and discarded once the call resolves.
type ConnectionRequest struct {
	UserID string
	AppKey string
	// Fields carries the extra request fields. They are posted flat on an
	// initial attempt, or nested under "connectionFields" when resubmitted
	// from a credential form.
	Fields map[string]any
}

// OutcomeCode enumerates the terminal results of a connect attempt.
type OutcomeCode string

const (
	OutcomeSuccess      OutcomeCode = "CONNECTION_SUCCESS"
	OutcomeFailed       OutcomeCode = "CONNECTION_FAILED"
	OutcomePopupBlocked OutcomeCode = "POPUP_BLOCKED"
	OutcomePendingForm  OutcomeCode = "PENDING_FORM"
	OutcomeCanceled     OutcomeCode = "CANCELED"
)

// Outcome is the terminal result of a connect attempt.
type Outcome struct {
	Code OutcomeCode
	// Fields holds the credential field schema when Code is OutcomePendingForm.
	Fields []FieldSpec
}

// FieldType identifies the input kind of a credential field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldPassword FieldType = "password"
)

// SelectOption is a single choice of a select field, in rendering order.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShowWhen is a single-level visibility predicate: the owning field is shown
// iff the field named Key currently holds Value.
type ShowWhen struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FieldSpec describes one input of a credential-collection form.
type FieldSpec struct {
	Name       string         `json:"name"`
	Type       FieldType      `json:"type,omitempty"`
	IsOptional bool           `json:"isOptional,omitempty"`
	Desc       string         `json:"desc,omitempty"`
	Options    []SelectOption `json:"options,omitempty"`
	ShowWhen   *ShowWhen      `json:"showWhen,omitempty"`
}

// CredentialInfo is the platform's credential-info document for an app.
type CredentialInfo struct {
	AppName string      `json:"appName"`
	Desc    string      `json:"desc"`
	Fields  []FieldSpec `json:"fields"`
}

// Matches reports whether the controlling field's current value satisfies the
// predicate. Comparison is string equality.
func (s *ShowWhen) Matches(value string) bool {
	return s != nil && s.Value == value
}
