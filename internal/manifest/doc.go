// Package manifest loads manifest files listing several repositories to
// analyze in one invocation.
//
// # Manifest Format
//
// Manifests can be written in YAML or JSON format:
//
//	sources:
//	  - input: https://github.com/org/repo.git
//	  - input: ./services/billing
//	options:
//	  continue_on_error: true
//	  output: ./analysis
//
// Sources are processed one after another, in file order. Each one produces
// its own <name>_analysis directory under options.output.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoSources: manifest has no sources defined
//   - ErrEmptyInput: source is missing the required input field
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package manifest
