// Package rules holds the static rule tables driving classification and
// broad-category aggregation. Tables are loaded once at process start and
// treated as immutable configuration; every consumer receives them as an
// explicit parameter.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"jsethi/finanalyzer/internal/models"
)

// KeywordTable maps a lowercase substring to a category label. Lookups are
// performed longest-substring-first.
type KeywordTable map[string]string

// TransferTable is the two-level hierarchical table for peer-to-peer
// transfer traffic: domain -> subdomain -> keywords.
type TransferTable map[string]map[string][]string

// BroadCategoryMap maps every known category label to one of the fixed
// portfolio-level broad categories. The mapping is total through its
// default: unmapped categories resolve to "Miscellaneous".
type BroadCategoryMap map[string]string

// Tables bundles the three rule tables a processing run needs.
type Tables struct {
	Keywords        KeywordTable
	Transfers       TransferTable
	BroadCategories BroadCategoryMap
}

// Flatten collapses the hierarchical transfer table into a single keyword
// table where every (domain, subdomain, keyword) triple becomes
// keyword -> "UPI-Domain-Subdomain", reusing the general longest-first
// matching discipline.
func (t TransferTable) Flatten() KeywordTable {
	flat := make(KeywordTable)
	for domain, subdomains := range t {
		for subdomain, keywords := range subdomains {
			label := fmt.Sprintf("%s%s-%s", models.TransferPrefix, domain, subdomain)
			for _, keyword := range keywords {
				flat[keyword] = label
			}
		}
	}
	return flat
}

// SortedKeys returns the table's keys ordered for matching: longest first,
// equal lengths broken lexicographically so results never depend on map
// iteration order.
func (t KeywordTable) SortedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// IsLoanCategory reports whether a category belongs to the loan-account
// family, whose broad category depends on transaction direction.
func IsLoanCategory(category string) bool {
	return strings.Contains(category, "Loan Account")
}
