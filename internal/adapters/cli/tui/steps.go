package tui

import (
	"fmt"
)

// StepStatus represents the state of a pipeline step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepError
)

type stepLine struct {
	name   string
	status StepStatus
	errMsg string
}

// StepDisplay renders the single-item pipeline stages as they advance.
// The pipeline is strictly sequential, so no locking is needed.
type StepDisplay struct {
	steps    []stepLine
	quiet    bool
	rendered bool
}

// NewStepDisplay creates a display over the named stages.
func NewStepDisplay(names []string, quiet bool) *StepDisplay {
	sd := &StepDisplay{steps: make([]stepLine, len(names)), quiet: quiet}
	for i, name := range names {
		sd.steps[i] = stepLine{name: name, status: StepPending}
	}
	return sd
}

// Start marks a step as running. Any still-running earlier step is
// marked complete first, so callers only need to report transitions.
func (sd *StepDisplay) Start(index int) {
	if index < 0 || index >= len(sd.steps) {
		return
	}
	for i := 0; i < index; i++ {
		if sd.steps[i].status == StepRunning {
			sd.steps[i].status = StepComplete
		}
	}
	sd.steps[index].status = StepRunning
	sd.render()
}

// CompleteAll marks every step done.
func (sd *StepDisplay) CompleteAll() {
	for i := range sd.steps {
		sd.steps[i].status = StepComplete
	}
	sd.render()
}

// Fail marks the currently running step as failed.
func (sd *StepDisplay) Fail(errMsg string) {
	for i := range sd.steps {
		if sd.steps[i].status == StepRunning {
			sd.steps[i].status = StepError
			sd.steps[i].errMsg = errMsg
			break
		}
	}
	sd.render()
}

func (sd *StepDisplay) render() {
	if sd.quiet {
		return
	}

	if sd.rendered {
		fmt.Printf("\033[%dA", len(sd.steps))
		fmt.Print("\033[J")
	}

	total := len(sd.steps)
	for i, step := range sd.steps {
		var marker string
		switch step.status {
		case StepPending:
			marker = " "
		case StepRunning:
			marker = "…"
		case StepComplete:
			marker = "✓"
		case StepError:
			marker = "✗ " + step.errMsg
		}
		fmt.Printf("[%d/%d] %s... %s\n", i+1, total, step.name, marker)
	}

	sd.rendered = true
}

// Done prints the final output location.
func (sd *StepDisplay) Done(outputPath string) {
	if sd.quiet {
		return
	}
	fmt.Printf("\n✓ Done! Audio saved to: %s\n", outputPath)
}
