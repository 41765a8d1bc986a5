package e2e

import (
	"github.com/cucumber/godog"

	"matchmaker/e2e/steps/common"
	"matchmaker/e2e/steps/matches"
	"matchmaker/e2e/steps/onboarding"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	onboarding.RegisterSteps(ctx, tc)
	matches.RegisterSteps(ctx, tc)
}
