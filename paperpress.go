// Package paperpress converts web articles into clean, printable PDF
// documents. It fetches a page, isolates the article body, strips ads and
// other non-content chrome, trims trailing reference sections, embeds every
// image inline as a data URI, and renders the result as a paginated PDF.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gofpdf/, http/).
package paperpress
