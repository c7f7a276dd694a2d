package rating

import "math"

// Aggregate computes the denormalized rating summary for a set of ratings.
// The average is rounded to two decimals, matching the precision shown in
// rating listings. An empty set yields (0, 0).
func Aggregate(ratings []*Rating) (average float64, count int) {
	if len(ratings) == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score()
	}

	average = math.Round(float64(sum)/float64(len(ratings))*100) / 100
	return average, len(ratings)
}
