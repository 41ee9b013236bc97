package ports

import "time"

// Clock abstracts time to keep services deterministic in tests
type Clock interface {
	Now() time.Time
}
