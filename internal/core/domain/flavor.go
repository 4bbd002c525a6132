package domain

import "go.trai.ch/zerr"

// ActionFlavor discriminates the kinds of actions a base target can be flavored into.
type ActionFlavor uint8

const (
	// ActionFlavorUnknown is the zero value and never names a real action.
	ActionFlavorUnknown ActionFlavor = iota
	// ActionFlavorCoreDataModel compiles Core Data model sources with momc.
	ActionFlavorCoreDataModel
)

var actionFlavorNames = [...]string{
	ActionFlavorUnknown:       "",
	ActionFlavorCoreDataModel: "core-data-model",
}

// String returns the flavor as it appears in build targets.
func (f ActionFlavor) String() string {
	if int(f) < len(actionFlavorNames) {
		return actionFlavorNames[f]
	}
	return ""
}

// ParseActionFlavor maps a flavor string back to its ActionFlavor.
func ParseActionFlavor(s string) (ActionFlavor, error) {
	for i, name := range actionFlavorNames {
		if name != "" && name == s {
			return ActionFlavor(i), nil
		}
	}
	return ActionFlavorUnknown, zerr.With(ErrUnknownFlavor, "flavor", s)
}

// RuleType names a rule type as it is fed into rule keys and configuration.
type RuleType string

const (
	// RuleTypeCoreDataModel is the rule type of Core Data model compile actions.
	RuleTypeCoreDataModel RuleType = "core_data_model"
)
