// Package checklist defines the declarative rule table the verifier
// interprets. Built-in presets (node, python, go, minimal) are embedded from
// presets.yaml; custom checklists are YAML files validated against the JSON
// Schema in schema/checklist.schema.json before use.
package checklist
