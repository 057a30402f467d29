// Package runtime detects the version of the language runtime a project is
// built with (Node.js, Python, Go) and compares it against a minimum. The
// DispatchProbe function selects the probe for a checklist rule's runtime field.
package runtime
