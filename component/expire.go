package component

// ExpireComponent marks the entity for removal once simulation time reaches Deadline
type ExpireComponent struct {
	Deadline float64
}

func (e ExpireComponent) IsExpired(now float64) bool {
	return now >= e.Deadline
}
