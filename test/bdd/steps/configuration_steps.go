package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/pi-planner/internal/application/planning/services"
	"github.com/andrescamacho/pi-planner/internal/domain/catalog"
	"github.com/andrescamacho/pi-planner/internal/domain/planning"
)

type configurationContext struct {
	resolver       *services.ConfigurationResolver
	configurations []planning.FactoryConfiguration
}

func (cc *configurationContext) reset() {
	cc.resolver = services.NewConfigurationResolver(catalog.New())
	cc.configurations = nil
}

// Action steps

func (cc *configurationContext) iResolveConfigurationsForOn(product, planetType string) error {
	parsed, err := catalog.ParsePlanetType(planetType)
	if err != nil {
		return err
	}
	cc.configurations = cc.resolver.FindValidConfigurations(parsed, product)
	return nil
}

// Assertion steps

func (cc *configurationContext) configurationsShouldBeReturned(count int) error {
	if len(cc.configurations) != count {
		return fmt.Errorf("expected %d configurations, got %d", count, len(cc.configurations))
	}
	return nil
}

func (cc *configurationContext) noConfigurationsShouldBeReturned() error {
	return cc.configurationsShouldBeReturned(0)
}

func (cc *configurationContext) firstConfiguration() (planning.FactoryConfiguration, error) {
	if len(cc.configurations) == 0 {
		return planning.FactoryConfiguration{}, fmt.Errorf("no configurations were returned")
	}
	return cc.configurations[0], nil
}

func (cc *configurationContext) theFirstConfigurationShouldMine(resource string) error {
	config, err := cc.firstConfiguration()
	if err != nil {
		return err
	}
	return shouldContainExactly("mined inputs", config.MinedInputs, resource)
}

func (cc *configurationContext) theFirstConfigurationShouldMineBoth(first, second string) error {
	config, err := cc.firstConfiguration()
	if err != nil {
		return err
	}
	return shouldContainExactly("mined inputs", config.MinedInputs, first, second)
}

func (cc *configurationContext) theFirstConfigurationShouldMineNothing() error {
	config, err := cc.firstConfiguration()
	if err != nil {
		return err
	}
	if len(config.MinedInputs) != 0 {
		return fmt.Errorf("expected no mined inputs, got %v", config.MinedInputs)
	}
	return nil
}

func (cc *configurationContext) theFirstConfigurationShouldImportBoth(first, second string) error {
	config, err := cc.firstConfiguration()
	if err != nil {
		return err
	}
	return shouldContainExactly("imported inputs", config.ImportedInputs, first, second)
}

func (cc *configurationContext) theFirstConfigurationShouldImportNothing() error {
	config, err := cc.firstConfiguration()
	if err != nil {
		return err
	}
	if len(config.ImportedInputs) != 0 {
		return fmt.Errorf("expected no imported inputs, got %v", config.ImportedInputs)
	}
	return nil
}

func shouldContainExactly(label string, actual []string, expected ...string) error {
	if len(actual) != len(expected) {
		return fmt.Errorf("expected %s %v, got %v", label, expected, actual)
	}
	for _, want := range expected {
		found := false
		for _, got := range actual {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected %s to contain %q, got %v", label, want, actual)
		}
	}
	return nil
}

func InitializeConfigurationScenario(ctx *godog.ScenarioContext) {
	resolverCtx := &configurationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		resolverCtx.reset()
		return ctx, nil
	})

	ctx.Step(`^I resolve configurations for "([^"]*)" on a "([^"]*)" planet$`, resolverCtx.iResolveConfigurationsForOn)
	ctx.Step(`^(\d+) configurations? should be returned$`, resolverCtx.configurationsShouldBeReturned)
	ctx.Step(`^no configurations should be returned$`, resolverCtx.noConfigurationsShouldBeReturned)
	ctx.Step(`^the first configuration should mine "([^"]*)"$`, resolverCtx.theFirstConfigurationShouldMine)
	ctx.Step(`^the first configuration should mine "([^"]*)" and "([^"]*)"$`, resolverCtx.theFirstConfigurationShouldMineBoth)
	ctx.Step(`^the first configuration should mine nothing$`, resolverCtx.theFirstConfigurationShouldMineNothing)
	ctx.Step(`^the first configuration should import "([^"]*)" and "([^"]*)"$`, resolverCtx.theFirstConfigurationShouldImportBoth)
	ctx.Step(`^the first configuration should import nothing$`, resolverCtx.theFirstConfigurationShouldImportNothing)
}
