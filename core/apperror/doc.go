// Package apperror defines the sentinel errors shared by services and handlers.
//
// Services wrap a sentinel with context (fmt.Errorf("handle required: %w", ErrValidation))
// and handlers translate it with Status or Respond.
package apperror
