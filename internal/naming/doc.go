// Package naming provides the case conversion used for serialized field labels.
//
// Field names are read from Scala source in camelCase and emitted as
// snake_case JSON labels. The conversion is a single character scan with no
// abbreviation heuristics, so "userID" becomes "user_id" and "HTTPServer"
// becomes "httpserver".
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
