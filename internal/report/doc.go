// Package report renders a verify.RunReport for people and scripts and maps
// it to a process exit code. The text format is a stable contract: one
// "✅ name" or "❌ name: message" line per check, then a "📊 Results: N passed,
// M failed" summary and a closing banner.
package report
