package domain

import "fmt"

// FirstRoundSize is how many jobs go into round 1; the rest form round 2.
const FirstRoundSize = 4

type Round struct {
	Number int
	Jobs   []Job
}

// Find returns the job with the given id.
func (r Round) Find(id JobID) (Job, error) {
	for _, job := range r.Jobs {
		if job.ID == id {
			return job, nil
		}
	}

	return Job{}, fmt.Errorf("%w: job %d in round %d", ErrJobNotInRound, id, r.Number)
}

// SplitRounds splits jobs into round 1 (the first FirstRoundSize jobs) and
// round 2 (the remainder). Round 2 is omitted when nothing is left for it.
func SplitRounds(jobs []Job) []Round {
	if len(jobs) == 0 {
		return nil
	}

	cut := FirstRoundSize
	if cut > len(jobs) {
		cut = len(jobs)
	}

	rounds := []Round{{Number: 1, Jobs: append([]Job(nil), jobs[:cut]...)}}
	if cut < len(jobs) {
		rounds = append(rounds, Round{Number: 2, Jobs: append([]Job(nil), jobs[cut:]...)})
	}

	return rounds
}
