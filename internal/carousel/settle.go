package carousel

// DefaultMaxSteps bounds Settle. At the default gain a snap across a
// thousand slots of 250 units settles in well under 200 steps.
const DefaultMaxSteps = 10000

// Settle delivers frames synchronously, starting at f, until the controller
// settles or maxSteps frames have been delivered. It returns the number of
// frames delivered. Headless hosts and tests use it in place of a render
// loop.
func Settle(c *Controller, f Frame, maxSteps int) int {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	steps := 0
	for f != 0 && steps < maxSteps {
		f = c.Step(f)
		steps++
	}
	return steps
}

// Drag feeds a complete press, move and release at the given positions and
// returns the frame to deliver. It reports false if the press was ignored.
func Drag(c *Controller, from, to float64) (Frame, bool) {
	if !c.PointerDown(PointerEvent{Position: from}) {
		return 0, false
	}
	c.PointerMove(PointerEvent{Position: to})
	return c.PointerUp(PointerEvent{Position: to}), true
}
