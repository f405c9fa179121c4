// Package documind provides a small backend that extracts readable article
// content from web pages, signs users in through third-party OAuth
// providers and stores extracted documents per user.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, readability/, oauth/).
package documind
