package authorize

const (
	correlationIDLength            int   = 20
	defaultInteractionLifetimeSecs int64 = 600
)
