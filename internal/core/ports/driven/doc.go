// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReportWriter: Fills the spreadsheet template with report cells
//   - ReportStore: Archive of finalized reports
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Listener, Speaker: Speech round trip. Only the blocking turn loop needs them.
//   - LocationLookup, WeatherLookup: Enrichment. Missing lookups yield fallback strings.
//   - ReportPublisher: Remote copy of the finished report.
//   - QuestionnaireLoader: Custom base questions. Without it the built-in set is used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
