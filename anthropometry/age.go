// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

import "time"

// AgeInMonths returns the number of whole calendar months from birth to at,
// never negative. A month only counts once its day-of-month has been reached:
// born Jan 31, measured Feb 28 is 0 months.
func AgeInMonths(birth, at time.Time) int {
	by, bm, bd := birth.Date()
	ay, am, ad := at.Date()

	months := (ay-by)*12 + int(am-bm)
	if ad < bd {
		months--
	}
	return max(months, 0)
}
