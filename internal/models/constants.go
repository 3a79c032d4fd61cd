package models

// Category labels with special meaning in the classification pipeline.
const (
	// CategoryOthers is the default label used whenever no keyword matches.
	CategoryOthers = "Others"

	// CategoryUPITransfer is the generic transfer label from the general
	// keyword table. A transaction resolving to this label without carrying
	// the transfer marker in its description is a likely false positive and
	// gets downgraded to CategoryOthers.
	CategoryUPITransfer = "UPI Transfer"

	// TransferMarker identifies peer-to-peer transfer traffic. Descriptions
	// containing it (case-insensitive) are routed to the transfer
	// sub-classifier instead of the general keyword table.
	TransferMarker = "UPI/"

	// TransferPrefix is the prefix of every label produced by the transfer
	// sub-classifier ("UPI-Domain-Subdomain").
	TransferPrefix = "UPI-"

	// TransferDomain is the consolidated label used when transfer
	// sub-category rows are rolled up in the category summary.
	TransferDomain = "UPI"

	// TransferDefault is assigned to transfer-marked transactions matching
	// no keyword in the hierarchical table.
	TransferDefault = "UPI-Others"
)

// Broad category labels the aggregation logic references by name.
const (
	BroadSelfTransfer  = "Self Transfer"
	BroadMiscellaneous = "Miscellaneous"
	BroadIncome        = "Income & Salary"
	BroadLoanRepayment = "Loan Repayment"
)

// Transaction direction tags carried by alert records.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Match quality labels produced by the reconciliation engine.
const (
	MatchExact   = "exact"
	MatchFuzzy   = "fuzzy"
	MatchPartial = "partial"
)
