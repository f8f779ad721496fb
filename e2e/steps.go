package e2e

import (
	"github.com/cucumber/godog"

	"babylist/e2e/steps/babylist"
	"babylist/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	babylist.RegisterSteps(ctx, tc)
}
