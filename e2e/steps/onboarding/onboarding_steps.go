package onboarding

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string) error
	LastStatus() int
	GetResponseField(field string) (interface{}, error)
}

// RegisterSteps registers onboarding step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &onboardingSteps{tc: tc}

	ctx.Step(`^I start onboarding$`, steps.start)
	ctx.Step(`^I log in with "([^"]*)"$`, steps.login)
	ctx.Step(`^I agree to the policy$`, steps.agree)
	ctx.Step(`^I submit a profile with name "([^"]*)" and mbti "([^"]*)" and answers "([^"]*)"$`, steps.submit)
	ctx.Step(`^I approve the profile$`, steps.approve)
	ctx.Step(`^I advance to "([^"]*)"$`, steps.advance)
	ctx.Step(`^I have completed onboarding as "([^"]*)" with mbti "([^"]*)"$`, steps.completeOnboarding)
	ctx.Step(`^the stage should be "([^"]*)"$`, steps.stageShouldBe)
}

type onboardingSteps struct {
	tc TestContext
}

func (s *onboardingSteps) start(ctx context.Context) error {
	return s.tc.POST("/onboarding/start", nil)
}

func (s *onboardingSteps) login(ctx context.Context, provider string) error {
	return s.tc.POST("/onboarding/login", map[string]string{"provider": provider})
}

func (s *onboardingSteps) agree(ctx context.Context) error {
	return s.tc.POST("/onboarding/policy/agree", nil)
}

func (s *onboardingSteps) submit(ctx context.Context, name, mbti, answers string) error {
	return s.tc.POST("/onboarding/profile", map[string]string{"name": name, "mbti": mbti, "answers": answers})
}

func (s *onboardingSteps) approve(ctx context.Context) error {
	return s.tc.POST("/onboarding/approve", nil)
}

func (s *onboardingSteps) advance(ctx context.Context, target string) error {
	return s.tc.POST("/onboarding/advance", map[string]string{"target": target})
}

func (s *onboardingSteps) completeOnboarding(ctx context.Context, name, mbti string) error {
	calls := []func() error{
		func() error { return s.start(ctx) },
		func() error { return s.login(ctx, "kakao") },
		func() error { return s.agree(ctx) },
		func() error { return s.submit(ctx, name, mbti, "") },
		func() error { return s.approve(ctx) },
	}
	for i, call := range calls {
		if err := call(); err != nil {
			return err
		}
		if s.tc.LastStatus() != 200 {
			return fmt.Errorf("onboarding step %d returned %d", i+1, s.tc.LastStatus())
		}
	}
	return nil
}

func (s *onboardingSteps) stageShouldBe(ctx context.Context, want string) error {
	if err := s.tc.GET("/onboarding"); err != nil {
		return err
	}
	got, err := s.tc.GetResponseField("stage")
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected stage %q, got %v", want, got)
	}
	return nil
}
