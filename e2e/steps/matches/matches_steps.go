package matches

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string) error
	GetResponseField(field string) (interface{}, error)
	Save(key, value string)
	Saved(key string) string
}

// RegisterSteps registers match and chat step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &matchSteps{tc: tc}

	ctx.Step(`^I create a demo match$`, steps.createDemo)
	ctx.Step(`^I instantly match with candidate "([^"]*)"$`, steps.instantMatch)
	ctx.Step(`^I save the match id$`, steps.saveMatchID)
	ctx.Step(`^I send "([^"]*)" to the saved match$`, steps.sendToSaved)
	ctx.Step(`^I open the saved match$`, steps.openSaved)
	ctx.Step(`^the conversation should have (\d+) messages$`, steps.conversationLength)
	ctx.Step(`^message (\d+) should be "([^"]*)" from "([^"]*)"$`, steps.messageShouldBe)
	ctx.Step(`^I should have (\d+) matches$`, steps.matchCount)
}

type matchSteps struct {
	tc TestContext
}

func (s *matchSteps) createDemo(ctx context.Context) error {
	return s.tc.POST("/matches/demo", nil)
}

func (s *matchSteps) instantMatch(ctx context.Context, candidateID string) error {
	return s.tc.POST("/discover/"+candidateID+"/match", nil)
}

func (s *matchSteps) saveMatchID(ctx context.Context) error {
	id, err := s.tc.GetResponseField("id")
	if err != nil {
		if id, err = s.tc.GetResponseField("match.id"); err != nil {
			return err
		}
	}
	s.tc.Save("match_id", fmt.Sprint(id))
	return nil
}

func (s *matchSteps) sendToSaved(ctx context.Context, text string) error {
	return s.tc.POST("/matches/"+s.tc.Saved("match_id")+"/messages", map[string]string{"text": text})
}

func (s *matchSteps) openSaved(ctx context.Context) error {
	return s.tc.GET("/matches/" + s.tc.Saved("match_id"))
}

func (s *matchSteps) conversationLength(ctx context.Context, want int) error {
	msgs, err := s.tc.GetResponseField("messages")
	if err != nil {
		return err
	}
	if got := len(msgs.([]interface{})); got != want {
		return fmt.Errorf("expected %d messages, got %d", want, got)
	}
	return nil
}

func (s *matchSteps) messageShouldBe(ctx context.Context, n int, text, sender string) error {
	prefix := fmt.Sprintf("messages.%d.", n-1)
	gotText, err := s.tc.GetResponseField(prefix + "text")
	if err != nil {
		return err
	}
	gotSender, err := s.tc.GetResponseField(prefix + "sender")
	if err != nil {
		return err
	}
	if gotText != text || gotSender != sender {
		return fmt.Errorf("expected message %d to be %q from %s, got %v from %v", n, text, sender, gotText, gotSender)
	}
	return nil
}

func (s *matchSteps) matchCount(ctx context.Context, want int) error {
	if err := s.tc.GET("/matches"); err != nil {
		return err
	}
	list, err := s.tc.GetResponseField("matches")
	if err != nil {
		return err
	}
	if got := len(list.([]interface{})); got != want {
		return fmt.Errorf("expected %d matches, got %d", want, got)
	}
	return nil
}
