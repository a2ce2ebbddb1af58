// Package insideideo provides a CLI client for a remote PDF extraction
// service. It submits case-study PDFs for processing, stores the returned
// structured data locally as editable sessions, lazily loads rendered page
// images, and exports results to the filesystem or clipboard.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, clipboard/).
package insideideo
