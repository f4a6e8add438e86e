// Package commands defines the shadowcss CLI.
//
// Commands
//
//   - serialize   Print the CSS text for a rule file
//   - adopt       Adopt rules into an element of an HTML page and print the result
//
// Rule files are YAML or JSON, see package rulefile.
package commands
