package logic

// PeriodController cycles the timer period 2000 → 1500 → 1000 → 500 → 2000 ms.
type PeriodController struct {
	delayMs uint32
}

// NewPeriodController returns a controller at MaxDelayMs.
func NewPeriodController() *PeriodController {
	return &PeriodController{delayMs: MaxDelayMs}
}

// Step shortens the period by DelayStepMs, wrapping to MaxDelayMs when it
// would drop below MinDelayMs, and returns the new period.
func (p *PeriodController) Step() uint32 {
	if p.delayMs < MinDelayMs+DelayStepMs {
		p.delayMs = MaxDelayMs
		return p.delayMs
	}
	p.delayMs -= DelayStepMs
	return p.delayMs
}

// DelayMs returns the current period in milliseconds.
func (p *PeriodController) DelayMs() uint32 {
	return p.delayMs
}
