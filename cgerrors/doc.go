// Package cgerrors provides structured error types for the circegen library.
//
// Import path: github.com/circegen/circegen/cgerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell which parsing stage rejected an input.
//
// # Error Types
//
//   - [ParseError]: a case class declaration did not match an extraction pattern
//   - [ConfigError]: invalid options or environment configuration
//   - [ResourceLimitError]: input exceeded a configured size limit
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrMalformedDeclaration]: Matches [ParseError] with Kind [KindDeclaration]
//   - [ErrMalformedTypeParameter]: Matches [ParseError] with Kind [KindTypeParameter]
//   - [ErrMalformedField]: Matches [ParseError] with Kind [KindField]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage
//
//	_, err := caseclass.Parse("case class Bad(age Int)")
//	if errors.Is(err, cgerrors.ErrMalformedField) {
//	    var perr *cgerrors.ParseError
//	    errors.As(err, &perr)
//	    fmt.Println("offending field:", perr.Fragment)
//	}
package cgerrors
