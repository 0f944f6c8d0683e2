package theme

import (
	"fmt"
	"sort"
)

// ParseOptions converts a dynamic option document (decoded YAML/JSON) into
// Options. Unrecognized keys are rejected rather than silently absorbed.
func ParseOptions(document map[string]any) (Options, error) {
	var ret Options
	for _, key := range sortedKeys(document) {
		section, err := asSection(key, document[key])
		if err != nil {
			return Options{}, err
		}
		var target *Elements
		switch key {
		case "styles":
			target = &ret.Styles
		case "classes":
			target = &ret.Classes
		default:
			return Options{}, fmt.Errorf("unrecognized theme key %q", key)
		}
		if err := parseElements(key, section, target); err != nil {
			return Options{}, err
		}
	}
	return ret, nil
}

func parseElements(section string, document map[string]any, target *Elements) error {
	for _, key := range sortedKeys(document) {
		value := document[key]
		switch key {
		case "dialog", "header", "title", "input":
			text, err := asString(section+"."+key, value)
			if err != nil {
				return err
			}
			switch key {
			case "dialog":
				target.Dialog = text
			case "header":
				target.Header = text
			case "title":
				target.Title = text
			case "input":
				target.Input = text
			}
		case "buttons":
			nested, err := asSection(section+".buttons", value)
			if err != nil {
				return err
			}
			for _, k := range sortedKeys(nested) {
				text, err := asString(section+".buttons."+k, nested[k])
				if err != nil {
					return err
				}
				switch k {
				case "modalClose":
					target.Buttons.ModalClose = text
				case "save":
					target.Buttons.Save = text
				default:
					return fmt.Errorf("unrecognized theme key %q", section+".buttons."+k)
				}
			}
		case "alert":
			nested, err := asSection(section+".alert", value)
			if err != nil {
				return err
			}
			for _, k := range sortedKeys(nested) {
				text, err := asString(section+".alert."+k, nested[k])
				if err != nil {
					return err
				}
				switch k {
				case "box":
					target.Alert.Box = text
				case "error":
					target.Alert.Error = text
				default:
					return fmt.Errorf("unrecognized theme key %q", section+".alert."+k)
				}
			}
		default:
			return fmt.Errorf("unrecognized theme key %q", section+"."+key)
		}
	}
	return nil
}

func asSection(path string, value any) (map[string]any, error) {
	section, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("theme key %q: expected an object", path)
	}
	return section, nil
}

func asString(path string, value any) (string, error) {
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("theme key %q: expected a string", path)
	}
	return text, nil
}

func sortedKeys(document map[string]any) []string {
	keys := make([]string, 0, len(document))
	for key := range document {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
