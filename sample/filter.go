package sample

// FilterInScope retains records whose Category equals target exactly and
// whose provenance is Primary or Immortalized. Input order is preserved. An
// empty result is valid and is left to the caller to act on.
//
// The second return value counts records that matched the target category but
// classified as Other. Those records vanish from the analysis without any
// other trace, so callers should surface the count to a human.
func FilterInScope(records []Record, target string) ([]Record, int) {
	var kept []Record
	var other int

	for _, rec := range records {
		if rec.Category != target {
			continue
		}

		switch rec.Provenance() {
		case Primary, Immortalized:
			kept = append(kept, rec)
		default:
			other++
		}
	}

	return kept, other
}
