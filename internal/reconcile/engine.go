// Package reconcile links statement transactions against alert transactions
// using weighted multi-factor fuzzy matching. The two sources share no
// identifier, so matching relies on amount, date, merchant text and
// transaction direction alone.
package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"

	"jsethi/finanalyzer/internal/currencyutils"
	"jsethi/finanalyzer/internal/dateutils"
	"jsethi/finanalyzer/internal/logging"
	"jsethi/finanalyzer/internal/models"
)

// Score weights and thresholds. A pair can reach at most 110 points: 40+10
// for the amount, 30 for the date, 20 for the merchant, 10 for direction.
const (
	amountWeight      = 40.0
	amountExactBonus  = 10.0
	dateWeight        = 30.0
	datePenaltyPerDay = 5.0
	merchantWeight    = 20.0
	merchantFuzzy     = 10.0
	directionWeight   = 10.0

	exactThreshold   = 80.0
	fuzzyThreshold   = 60.0
	partialThreshold = 40.0
)

// Options tune the matching tolerances. Negative values are replaced by the
// defaults used by DefaultOptions; zero is honored as a strict tolerance
// (exact amounts, same-day dates).
type Options struct {
	// AmountTolerance is the maximum absolute amount difference, in currency
	// units, still awarded the full amount score.
	AmountTolerance float64

	// DayTolerance is the maximum date difference, in days, contributing any
	// date score.
	DayTolerance int

	// ExclusiveMatching switches from the legacy greedy behavior, where one
	// alert transaction may be claimed by several statement transactions, to
	// one-to-one matching where each alert is claimed at most once.
	ExclusiveMatching bool
}

// DefaultOptions returns the tolerances the matching algorithm was tuned
// with: one currency unit and three days.
func DefaultOptions() Options {
	return Options{AmountTolerance: 1.0, DayTolerance: 3}
}

// merchantAliases groups known spellings of the same merchant family. Two
// strings mapping into the same family count as a fuzzy merchant match.
var merchantAliases = map[string][]string{
	"zomato":   {"zomato", "zomato limited"},
	"swiggy":   {"swiggy", "www swiggy com"},
	"amazon":   {"amazon", "amazon pay", "amzn"},
	"flipkart": {"flipkart", "fkrt"},
	"paytm":    {"paytm", "paytm payments"},
	"uber":     {"uber", "uber india"},
	"ola":      {"ola", "ola cabs"},
}

// Engine reconciles grouped statement transactions against grouped alert
// transactions. It is stateless across runs; a single Reconcile call owns
// its inputs for the duration.
type Engine struct {
	opts   Options
	logger logging.Logger
}

// NewEngine creates an Engine with the given options, falling back to
// DefaultOptions values for negative tolerances. A tolerance of zero is a
// deliberate strict setting and is kept as-is.
func NewEngine(opts Options, logger logging.Logger) *Engine {
	defaults := DefaultOptions()
	if opts.AmountTolerance < 0 {
		opts.AmountTolerance = defaults.AmountTolerance
	}
	if opts.DayTolerance < 0 {
		opts.DayTolerance = defaults.DayTolerance
	}
	return &Engine{opts: opts, logger: logger}
}

// Reconcile matches every statement group against the alert groups whose
// bank-name key associates with it and returns the matches keyed by the
// statement group key. A statement group with no associated alert group
// produces zero matches; the run always completes.
func (e *Engine) Reconcile(statementGroups map[string][]models.Transaction, alertGroups map[string][]models.AlertTransaction) map[string][]models.MatchResult {
	results := make(map[string][]models.MatchResult, len(statementGroups))

	for groupKey, statements := range statementGroups {
		candidates := e.associate(groupKey, alertGroups)
		if len(candidates) == 0 {
			e.logger.WithFields(
				logging.Field{Key: logging.FieldGroup, Value: groupKey},
			).Warn("No alert transactions found for statement group")
			results[groupKey] = nil
			continue
		}

		var matches []models.MatchResult
		if e.opts.ExclusiveMatching {
			matches = e.matchExclusive(statements, candidates)
		} else {
			matches = e.matchGreedy(statements, candidates)
		}

		e.logger.WithFields(
			logging.Field{Key: logging.FieldGroup, Value: groupKey},
			logging.Field{Key: logging.FieldCount, Value: len(matches)},
		).Info("Reconciled statement group")
		results[groupKey] = matches
	}

	return results
}

// associate collects the alert transactions of every alert group whose bank
// key is a case-insensitive substring match, in either direction, of the
// statement group's bank name. The bank name is the group key's segment
// before the first underscore.
func (e *Engine) associate(groupKey string, alertGroups map[string][]models.AlertTransaction) []models.AlertTransaction {
	bankName := strings.ToLower(strings.SplitN(groupKey, "_", 2)[0])

	var candidates []models.AlertTransaction
	for alertBank, alerts := range alertGroups {
		lowerAlertBank := strings.ToLower(alertBank)
		if strings.Contains(lowerAlertBank, bankName) || strings.Contains(bankName, lowerAlertBank) {
			candidates = append(candidates, alerts...)
		}
	}
	return candidates
}

// matchGreedy selects, for each statement transaction independently, the
// single highest-scoring alert candidate clearing the minimum threshold.
// One alert may be claimed by several statement transactions.
func (e *Engine) matchGreedy(statements []models.Transaction, alerts []models.AlertTransaction) []models.MatchResult {
	var matches []models.MatchResult

	for _, stmt := range statements {
		bestScore := 0.0
		bestIdx := -1

		for i, alert := range alerts {
			score, _ := e.Score(stmt, alert)
			if score > bestScore && score >= partialThreshold {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 {
			matches = append(matches, models.MatchResult{
				Statement: stmt,
				Alert:     alerts[bestIdx],
				Score:     bestScore,
				MatchType: MatchType(bestScore),
			})
		}
	}

	return matches
}

// matchExclusive is the one-to-one variant: statements are processed in
// order and each alert transaction may be claimed at most once.
func (e *Engine) matchExclusive(statements []models.Transaction, alerts []models.AlertTransaction) []models.MatchResult {
	var matches []models.MatchResult
	claimed := make(map[int]bool, len(alerts))

	for _, stmt := range statements {
		bestScore := 0.0
		bestIdx := -1

		for i, alert := range alerts {
			if claimed[i] {
				continue
			}
			score, _ := e.Score(stmt, alert)
			if score > bestScore && score >= partialThreshold {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 {
			claimed[bestIdx] = true
			matches = append(matches, models.MatchResult{
				Statement: stmt,
				Alert:     alerts[bestIdx],
				Score:     bestScore,
				MatchType: MatchType(bestScore),
			})
		}
	}

	return matches
}

// Score computes the weighted match score for one (statement, alert) pair
// and its quality label. Missing or unparseable fields zero the relevant
// component instead of failing the comparison.
func (e *Engine) Score(stmt models.Transaction, alert models.AlertTransaction) (float64, string) {
	score := 0.0

	// Amount component.
	stmtAmount := stmt.Amount()
	alertAmount := currencyutils.ParseAmount(alert.Amount)
	diff := currencyutils.AbsDiff(stmtAmount, alertAmount)
	if diff.LessThanOrEqual(decimal.NewFromFloat(e.opts.AmountTolerance)) {
		score += amountWeight
		if diff.LessThan(decimal.NewFromFloat(0.01)) {
			score += amountExactBonus
		}
	}

	// Date component, only when both sides parsed.
	stmtDate, stmtErr := dateutils.ParseDate(stmt.Date)
	alertDate, alertErr := dateutils.ParseDate(alert.Date)
	if stmtErr == nil && alertErr == nil {
		dayDiff := dateutils.DayDiff(stmtDate, alertDate)
		if dayDiff <= e.opts.DayTolerance {
			// A wide tolerance must not drive the component negative.
			if pts := dateWeight - float64(dayDiff)*datePenaltyPerDay; pts > 0 {
				score += pts
			}
		}
	}

	// Merchant component.
	desc := strings.ToLower(stmt.Description)
	merchant := strings.ToLower(alert.Merchant)
	if merchant != "" && strings.Contains(desc, merchant) {
		score += merchantWeight
	} else if fuzzyMerchantMatch(desc, merchant) {
		score += merchantFuzzy
	}

	// Direction component.
	if alert.Type != "" && stmt.Type() == strings.ToLower(alert.Type) {
		score += directionWeight
	}

	return score, MatchType(score)
}

// fuzzyMerchantMatch reports whether the description and merchant map into
// the same known merchant family, or whether any merchant word longer than
// three characters appears in the description.
func fuzzyMerchantMatch(desc, merchant string) bool {
	if desc == "" || merchant == "" {
		return false
	}

	for _, variations := range merchantAliases {
		inMerchant := false
		inDesc := false
		for _, variant := range variations {
			if strings.Contains(merchant, variant) {
				inMerchant = true
			}
			if strings.Contains(desc, variant) {
				inDesc = true
			}
		}
		if inMerchant && inDesc {
			return true
		}
	}

	for _, word := range strings.Fields(merchant) {
		if len(word) > 3 && strings.Contains(desc, word) {
			return true
		}
	}

	return false
}

// MatchType maps a score onto its quality label. Scores below the partial
// threshold yield an empty label and no match is recorded.
func MatchType(score float64) string {
	switch {
	case score >= exactThreshold:
		return models.MatchExact
	case score >= fuzzyThreshold:
		return models.MatchFuzzy
	case score >= partialThreshold:
		return models.MatchPartial
	default:
		return ""
	}
}
