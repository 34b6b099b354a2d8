package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cc-details-portal/internal/model"
)

// SuccessWindow is how long the success banner stays up after a send.
const SuccessWindow = 10 * time.Second

var (
	ErrInvalid  = errors.New("form has invalid fields")
	ErrInFlight = errors.New("a submission is already in flight")
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown once a request completes.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

var (
	sentNotification = Notification{
		Title:       "Success",
		Description: "Credit Card Information has been sent",
		Variant:     VariantDefault,
	}
	failedNotification = Notification{
		Title:       "Error",
		Description: "Failed to send Credit Card Information",
		Variant:     VariantDestructive,
	}
)

// Poster delivers a submission to the relay endpoint.
type Poster interface {
	Post(ctx context.Context, submission model.CardSubmission) error
}

type Notifier interface {
	Notify(n Notification)
}

// Form is the card details form bound to a single booking reference.
// It is safe for concurrent use.
type Form struct {
	refNumber string
	poster    Poster
	notifier  Notifier
	clock     Clock

	mu         sync.Mutex
	values     Values
	errors     FieldErrors
	loading    bool
	success    bool
	timer      Timer
	generation int
}

type Option func(*Form)

// WithClock replaces the clock used for the success banner timer.
func WithClock(c Clock) Option {
	return func(f *Form) {
		f.clock = c
	}
}

func New(refNumber string, poster Poster, notifier Notifier, opts ...Option) *Form {
	f := &Form{
		refNumber: refNumber,
		poster:    poster,
		notifier:  notifier,
		clock:     realClock{},
		errors:    FieldErrors{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set updates a single field by name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldCardNumber:
		f.values.CardNumber = value
	case FieldCardName:
		f.values.CardName = value
	case FieldCardExpirationMonth:
		f.values.CardExpirationMonth = value
	case FieldCardExpirationYear:
		f.values.CardExpirationYear = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (f *Form) SetValues(v Values) {
	f.mu.Lock()
	f.values = v
	f.mu.Unlock()
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns a copy of the inline messages from the last Submit.
func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return errs
}

func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *Form) Success() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

// Submit validates the form and, when valid, posts it once to the relay.
// It blocks until the relay answers.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	errs := Validate(f.values)
	f.errors = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return ErrInvalid
	}
	if f.loading {
		f.mu.Unlock()
		return ErrInFlight
	}
	f.loading = true
	submission := model.CardSubmission{
		RefNumber:           f.refNumber,
		CardNumber:          f.values.CardNumber,
		CardName:            f.values.CardName,
		CardExpirationMonth: f.values.CardExpirationMonth,
		CardExpirationYear:  f.values.CardExpirationYear,
	}
	f.mu.Unlock()

	err := f.poster.Post(ctx, submission)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.mu.Unlock()
		f.notifier.Notify(failedNotification)
		return fmt.Errorf("posting card details: %w", err)
	}
	f.values = Values{}
	f.errors = FieldErrors{}
	f.showSuccessLocked()
	f.mu.Unlock()

	f.notifier.Notify(sentNotification)
	return nil
}

// Reset clears every field and hides the success banner immediately.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = Values{}
	f.errors = FieldErrors{}
	f.success = false
	f.stopTimerLocked()
}

// Close stops the pending success timer, if any.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimerLocked()
}

func (f *Form) showSuccessLocked() {
	f.stopTimerLocked()
	f.success = true
	gen := f.generation
	f.timer = f.clock.AfterFunc(SuccessWindow, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// a timer stopped too late must not clear a newer banner
		if f.generation == gen {
			f.success = false
			f.timer = nil
		}
	})
}

func (f *Form) stopTimerLocked() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
