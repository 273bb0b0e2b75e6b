package version

import (
	"fmt"
	"strconv"
	"time"
)

// Set at build time via -ldflags.
var (
	Revision      = "unknown"
	BuildUnixTime = ""
)

func Version() string {
	bt := BuildTime()
	if bt == nil {
		return Revision
	}
	return fmt.Sprintf("%s (built %s)", Revision, bt.UTC().Format(time.RFC3339))
}

func BuildTime() *time.Time {
	tm, err := strconv.ParseInt(BuildUnixTime, 10, 64)
	if err != nil {
		return nil
	}
	ts := time.Unix(tm, 0)
	return &ts
}
