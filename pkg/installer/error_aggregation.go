package installer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

var errorAggregationLog = logger.New("installer:error_aggregation")

// ErrorCollector gathers the failures of a run so all of them can be
// reported together. In fail-fast mode Add hands the first error back.
// It is safe for concurrent use.
type ErrorCollector struct {
	mu       sync.Mutex
	errors   []error
	failFast bool
}

// NewErrorCollector creates a new error collector
func NewErrorCollector(failFast bool) *ErrorCollector {
	errorAggregationLog.Printf("Creating error collector: fail_fast=%v", failFast)
	return &ErrorCollector{
		errors:   make([]error, 0),
		failFast: failFast,
	}
}

// Add records err. With fail-fast enabled it also returns err so the caller
// can stop.
func (c *ErrorCollector) Add(err error) error {
	if err == nil {
		return nil
	}

	errorAggregationLog.Printf("Adding error to collector: %v", err)

	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()

	if c.failFast {
		errorAggregationLog.Print("Fail-fast enabled, returning error immediately")
		return err
	}
	return nil
}

// HasErrors returns true if any errors have been collected
func (c *ErrorCollector) HasErrors() bool {
	return c.Count() > 0
}

// Count returns the number of errors collected
func (c *ErrorCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// Error returns nil, the single collected error, or all of them joined.
func (c *ErrorCollector) Error() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	}

	errorAggregationLog.Printf("Aggregating %d errors", len(c.errors))
	return errors.Join(c.errors...)
}

// FormattedError is Error with a "Found N <category> errors:" header when
// more than one error was collected.
func (c *ErrorCollector) FormattedError(category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s errors:", len(c.errors), category)
	for _, err := range c.errors {
		sb.WriteString("\n  • ")
		sb.WriteString(err.Error())
	}

	return &aggregateError{msg: sb.String(), errs: append([]error(nil), c.errors...)}
}

// aggregateError keeps the collected errors reachable through errors.Is/As.
type aggregateError struct {
	msg  string
	errs []error
}

func (e *aggregateError) Error() string   { return e.msg }
func (e *aggregateError) Unwrap() []error { return e.errs }
