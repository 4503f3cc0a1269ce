package ports

// RandomSource draws core indices for random assignment. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}
