package domain

import "fmt"

type CoreID int

// CoreCount is the size of the simulated cluster.
const CoreCount = 4

// Core accumulates the jobs assigned to one processing unit.
// totalMS always equals the sum of the jobs' processing times.
type Core struct {
	ID      CoreID
	jobs    []Job
	totalMS int
}

func NewCore(id CoreID) *Core {
	return &Core{ID: id}
}

// NewCores returns CoreCount empty cores with ids 1..CoreCount.
func NewCores() []*Core {
	cores := make([]*Core, 0, CoreCount)
	for i := 1; i <= CoreCount; i++ {
		cores = append(cores, NewCore(CoreID(i)))
	}

	return cores
}

func (c *Core) Assign(job Job) {
	c.jobs = append(c.jobs, job)
	c.totalMS += job.ProcessingMS
}

// Jobs returns a copy of the assigned jobs in assignment order.
func (c *Core) Jobs() []Job {
	out := make([]Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Core) TotalMS() int {
	return c.totalMS
}

func (c *Core) String() string {
	if len(c.jobs) == 0 {
		return fmt.Sprintf("Core %d: (Total: %dms)", c.ID, c.totalMS)
	}

	return fmt.Sprintf("Core %d: %s (Total: %dms)", c.ID, joinJobs(c.jobs), c.totalMS)
}

// Makespan returns the largest core total, or 0 for no cores.
func Makespan(cores []*Core) int {
	maxMS := 0
	for _, core := range cores {
		if core.totalMS > maxMS {
			maxMS = core.totalMS
		}
	}

	return maxMS
}
