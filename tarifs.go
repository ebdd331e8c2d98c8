// Package tarifs turns the public photovoltaique.info tariff page into a
// small structured record of EDF OA surplus buyback rates. It extracts text
// from the page's tables, scans it for capacity-range/price pairs with a
// tolerant pattern, and reconciles the results against a fixed set of three
// tariff bands, falling back to hardcoded prices when the page layout drifts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package tarifs
