// Package theme holds the fixed, enumerated appearance options for the
// credential dialog. Options merge key by key into the current theme;
// anything left unset keeps its built-in default.
package theme

// Elements groups the per-element style or class strings recognized by the
// dialog renderer. A Theme carries one Elements set of inline styles and one
// of class names; a renderer applies classes when set, styles otherwise.
type Elements struct {
	Dialog  string `yaml:"dialog,omitempty" json:"dialog,omitempty"`
	Header  string `yaml:"header,omitempty" json:"header,omitempty"`
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Buttons Buttons `yaml:"buttons,omitempty" json:"buttons,omitempty"`
	Input   string `yaml:"input,omitempty" json:"input,omitempty"`
	Alert   Alert  `yaml:"alert,omitempty" json:"alert,omitempty"`
}

// Buttons styles the modal's two actions.
type Buttons struct {
	ModalClose string `yaml:"modalClose,omitempty" json:"modalClose,omitempty"`
	Save       string `yaml:"save,omitempty" json:"save,omitempty"`
}

// Alert styles the transient error banner.
type Alert struct {
	Box   string `yaml:"box,omitempty" json:"box,omitempty"`
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Theme is the resolved appearance configuration.
type Theme struct {
	Styles  Elements `yaml:"styles,omitempty" json:"styles,omitempty"`
	Classes Elements `yaml:"classes,omitempty" json:"classes,omitempty"`
}

// Options is a partial theme: only non-empty entries overwrite the target.
type Options = Theme

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Styles: Elements{
			Dialog: "padding: 30px; border: none; border-radius: 10px; width: 600px;",
			Header: "display: flex; justify-content: space-between; align-items: center; margin-bottom: 20px;",
			Title:  "font-size: medium; font-weight: 600;",
			Buttons: Buttons{
				ModalClose: "border: 1px solid #DDD; padding: 5px 10px; border-radius: 10px;",
				Save:       "border: 1px solid #0E8838; padding: 5px 10px; border-radius: 10px; background-color: #17C653; color: white; float: right;",
			},
			Input: "display: block; width: 100%; background-color: #FFF; border-radius: 10px; height: 30px; color: #2E384D; border: 1px solid #EDEDED; padding-left: 10px;",
			Alert: Alert{
				Box:   "padding: 10px; border-radius: 10px; margin-bottom: 10px;",
				Error: "background-color: #FFEEF3; border: 1px solid #fc97af; color: #F8285A;",
			},
		},
	}
}

// Apply merges options into the theme, key by key.
func (t *Theme) Apply(options Options) {
	t.Styles.apply(options.Styles)
	t.Classes.apply(options.Classes)
}

func (e *Elements) apply(options Elements) {
	overwrite(&e.Dialog, options.Dialog)
	overwrite(&e.Header, options.Header)
	overwrite(&e.Title, options.Title)
	overwrite(&e.Buttons.ModalClose, options.Buttons.ModalClose)
	overwrite(&e.Buttons.Save, options.Buttons.Save)
	overwrite(&e.Input, options.Input)
	overwrite(&e.Alert.Box, options.Alert.Box)
	overwrite(&e.Alert.Error, options.Alert.Error)
}

func overwrite(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}
