// Package pipeline holds the path and markup transforms around a rendered
// client library include:
//   - rewriting library storage paths to the public proxy prefix
//   - injecting a rendered include into an HTML page without duplicating
//     scripts or stylesheets the page already references
//
// Tag rendering itself is done by the root clientlib package.
package pipeline
