// Package formstate holds the state of one prompt form session: the selected
// values, the last rendered instruction and the transient "copied" flag.
package formstate

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"journalguru/internal/domain"
	"journalguru/internal/instruction"
)

// DefaultCopiedFor is how long Copied stays true after a copy.
const DefaultCopiedFor = 2 * time.Second

// ErrNothingToCopy is returned by Copy before anything has been rendered.
var ErrNothingToCopy = errors.New("nothing to copy")

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures a Controller.
type Options struct {
	// Required defaults to domain.StyleOptional.
	Required  domain.RequiredFields
	CopiedFor time.Duration
}

type Controller struct {
	mu        sync.Mutex
	clipboard Clipboard
	required  domain.RequiredFields
	copiedFor time.Duration

	values   domain.PromptRequest
	rendered string
	copied   bool
	copyGen  uint64
	timer    *time.Timer
}

func New(clipboard Clipboard, opts Options) *Controller {
	required := opts.Required
	if required == nil {
		required = domain.StyleOptional
	}
	copiedFor := opts.CopiedFor
	if copiedFor <= 0 {
		copiedFor = DefaultCopiedFor
	}
	return &Controller{clipboard: clipboard, required: required, copiedFor: copiedFor}
}

// SetField overwrites one value without validating it.
func (c *Controller) SetField(name, value string) error {
	field, ok := domain.ParseField(name)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Set(field, value)
	return nil
}

// Submit renders the instruction when the form is complete. An incomplete
// form leaves every piece of state untouched.
func (c *Controller) Submit() domain.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := domain.Validate(c.values, c.required)
	if !result.OK {
		return result
	}
	c.rendered = instruction.Build(c.values, instruction.Options{})
	return result
}

// Store replaces the rendered text with text produced elsewhere, such as a
// reply from the generation endpoint.
func (c *Controller) Store(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rendered = text
}

// Copy writes the rendered text to the clipboard and raises Copied until the
// revert delay elapses. Copying again restarts the delay.
func (c *Controller) Copy() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rendered == "" {
		return ErrNothingToCopy
	}
	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(c.rendered); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
	}
	c.copied = true
	c.copyGen++
	gen := c.copyGen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.copiedFor, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.copyGen == gen {
			c.copied = false
		}
	})
	return nil
}

// Reset clears every value and the rendered text.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = domain.PromptRequest{}
	c.rendered = ""
}

func (c *Controller) Values() domain.PromptRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

func (c *Controller) Rendered() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}

func (c *Controller) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}
