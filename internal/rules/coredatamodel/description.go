package coredatamodel

import (
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/modelc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Arg is the declarative form of a core_data_model rule.
type Arg struct {
	// Target is the unflavored rule target, e.g. //App:Model.
	Target domain.BuildTarget
	// Module is the module name. It defaults to the target's short name.
	Module string
	// Sources are the resolved data model sources.
	Sources []domain.SourcePath
	// Platforms lists the platform flavors the rule is built for.
	Platforms []string
	// Deps are other unflavored rule targets built before this one.
	Deps []domain.BuildTarget
}

// Description creates Model actions from rule arguments.
type Description struct {
	platforms map[string]ports.PlatformDescriptor
}

// NewDescription creates a Description resolving platforms by flavor name.
func NewDescription(platforms map[string]ports.PlatformDescriptor) *Description {
	return &Description{platforms: platforms}
}

// Type returns the rule type the description creates.
func (d *Description) Type() domain.RuleType {
	return domain.RuleTypeCoreDataModel
}

// CreateActions creates one action per platform of arg, in the order the
// platforms are listed.
func (d *Description) CreateActions(arg Arg) ([]*Model, error) {
	actions := make([]*Model, 0, len(arg.Platforms))
	for _, name := range arg.Platforms {
		m, err := d.CreateAction(arg, name)
		if err != nil {
			return nil, err
		}
		actions = append(actions, m)
	}
	return actions, nil
}

// CreateAction creates the action building arg for a single platform.
// Dependencies are mapped to the same platform flavor of the dependency.
func (d *Description) CreateAction(arg Arg, platformName string) (*Model, error) {
	platform, ok := d.platforms[platformName]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrUnknownPlatform, "platform", platformName), "target", arg.Target.String())
	}

	target, err := flavored(arg.Target, platformName)
	if err != nil {
		return nil, err
	}

	deps := make([]domain.BuildTarget, 0, len(arg.Deps))
	for _, dep := range arg.Deps {
		flavoredDep, err := flavored(dep, platformName)
		if err != nil {
			return nil, zerr.With(err, "dependency_of", arg.Target.String())
		}
		deps = append(deps, flavoredDep)
	}

	module := arg.Module
	if module == "" {
		module = arg.Target.ShortName
	}

	return New(Params{Target: target, Deps: deps}, platform, module, arg.Sources)
}

func flavored(target domain.BuildTarget, platformName string) (domain.BuildTarget, error) {
	flavors := append([]string{domain.ActionFlavorCoreDataModel.String(), platformName}, target.Flavors...)
	return domain.NewBuildTarget(target.BaseName, target.ShortName, flavors...)
}
