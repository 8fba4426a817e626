package dataset

// MaxCompare is the largest selection the comparison accepts. Larger
// selections are truncated to the first MaxCompare names, not rejected.
const MaxCompare = 5

// Outcome classifies the result of ranking a comparison selection.
type Outcome string

const (
	// OutcomeNoSelection means no names were selected; callers show a
	// prompt state.
	OutcomeNoSelection Outcome = "no_selection"

	// OutcomeUndetermined means no matched record carries a rankable
	// value. Informational, not an error.
	OutcomeUndetermined Outcome = "undetermined"

	// OutcomeSingleWinner means exactly one record holds the maximum
	// total projection.
	OutcomeSingleWinner Outcome = "single_winner"

	// OutcomeTie means two or more records share the maximum, by exact
	// equality.
	OutcomeTie Outcome = "tie"
)

// Comparison is the result of ranking a selection of players against each
// other by total projection.
type Comparison struct {
	// Records holds the matched records in table order, projected over the
	// table's canonical columns. This is the set comparison exports use.
	Records []Record `json:"records"`

	// Ranked holds the same records ordered by total projection
	// descending, absent values last.
	Ranked []Record `json:"ranked"`

	Outcome  Outcome `json:"outcome"`
	MaxValue Float   `json:"max_value"`

	// Winners names every record whose total equals MaxValue. One entry
	// for a single winner, two or more for a tie, empty otherwise.
	Winners []string `json:"winners"`

	// Truncated is set when the selection exceeded MaxCompare and was cut
	// to the first MaxCompare names. Non-fatal.
	Truncated bool `json:"truncated"`

	// RankingFieldMissing is set when the total-projection column is
	// absent from the table schema entirely; ranking is skipped but the
	// matched records are still returned. Non-fatal.
	RankingFieldMissing bool `json:"ranking_field_missing"`
}

// Top returns the leading ranked record. The second return is false unless
// the first entry carries a value equal to the maximum, so an all-absent or
// unrankable comparison has no top.
func (c Comparison) Top() (Record, bool) {
	if len(c.Ranked) == 0 || c.RankingFieldMissing || !c.MaxValue.Valid {
		return Record{}, false
	}
	first := c.Ranked[0]
	if !first.Total.Valid || first.Total.Value != c.MaxValue.Value {
		return Record{}, false
	}
	return first, true
}

// Compare looks up the selected names in the table and ranks the matches by
// total projection. Name matching is exact. Pure computation; the table is
// never modified.
func Compare(t *Table, selection []string) Comparison {
	if len(selection) == 0 {
		return Comparison{Outcome: OutcomeNoSelection}
	}

	var cmp Comparison
	if len(selection) > MaxCompare {
		selection = selection[:MaxCompare]
		cmp.Truncated = true
	}

	selected := make(map[string]bool, len(selection))
	for _, name := range selection {
		selected[name] = true
	}

	for _, r := range t.Records {
		if selected[r.Player] {
			cmp.Records = append(cmp.Records, r)
		}
	}

	if !t.HasColumn(FieldTotalProjection) {
		cmp.RankingFieldMissing = true
		cmp.Outcome = OutcomeUndetermined
		return cmp
	}

	for _, r := range cmp.Records {
		if !r.Total.Valid {
			continue
		}
		if !cmp.MaxValue.Valid || r.Total.Value > cmp.MaxValue.Value {
			cmp.MaxValue = r.Total
		}
	}

	cmp.Ranked = make([]Record, len(cmp.Records))
	copy(cmp.Ranked, cmp.Records)
	sortRecords(cmp.Ranked, FieldTotalProjection, true)

	if !cmp.MaxValue.Valid {
		cmp.Outcome = OutcomeUndetermined
		return cmp
	}

	for _, r := range cmp.Records {
		if r.Total.Valid && r.Total.Value == cmp.MaxValue.Value {
			cmp.Winners = append(cmp.Winners, r.Player)
		}
	}
	if len(cmp.Winners) > 1 {
		cmp.Outcome = OutcomeTie
	} else {
		cmp.Outcome = OutcomeSingleWinner
	}

	return cmp
}
