// Package lexso extracts lexicographic entries from archived dictionary pages
// and matches external lexical records against those entries.
//
// This package contains domain types, pure domain logic and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, bloom/).
package lexso
