// Package rules provides the stock validation rules for asset registers.
package rules

import "github.com/hkmshb/elco/pkg/register"

// RegisterAllRules registers all validation rules with the given registry.
func RegisterAllRules(registry *register.RuleRegistry) {
	RegisterStationRules(registry)
	RegisterPowerLineRules(registry)
	RegisterRatingRules(registry)
	RegisterReferenceRules(registry)
	RegisterUniqueRules(registry)
}

// NewDefaultRegistry creates a new registry with all rules registered.
func NewDefaultRegistry() *register.RuleRegistry {
	registry := register.NewRuleRegistry()
	RegisterAllRules(registry)
	return registry
}
