package models

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Policy lists the service terms shown on the policy screen before agreement.
type Policy struct {
	IntroCadence time.Duration
	FeeKRW       int
	Terms        []string
}

var korean = message.NewPrinter(language.Korean)

// NewPolicy renders the terms for the given introduction cadence and fee.
func NewPolicy(cadence time.Duration, feeKRW int) Policy {
	return Policy{
		IntroCadence: cadence,
		FeeKRW:       feeKRW,
		Terms: []string{
			"소개 주기: " + cadenceText(cadence),
			korean.Sprintf("소개팅 비용: %d원 (예시)", feeKRW),
			"이용 약관 및 개인정보 처리방침에 동의해 주세요.",
		},
	}
}

func cadenceText(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d == day:
		return "매일"
	case d%day == 0:
		return korean.Sprintf("%d일에 한 번", int(d/day))
	default:
		return korean.Sprintf("%d시간에 한 번", int(d/time.Hour))
	}
}
