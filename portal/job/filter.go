package job

import "github.com/banoqabil/jobhub/pkg/kernel"

// Filter narrows listings by free-text term and category. It is a pure
// function of its inputs: the result is always a subset of jobs in the
// original order, and Filter(jobs, "", "All") returns every listing.
func Filter(jobs []Job, term string, category kernel.JobCategory) []Job {
	matched := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.MatchesTerm(term) && j.MatchesCategory(category) {
			matched = append(matched, j)
		}
	}
	return matched
}
