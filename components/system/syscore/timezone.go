package syscore

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	// Zone lookups must not depend on the host zoneinfo installation.
	_ "time/tzdata"
)

const zoneinfoDir = "zoneinfo/"

// LocalTimezone returns the IANA identifier of the local time zone.
//
// Resolution order: $TZ, /etc/localtime symlink target, "UTC".
func LocalTimezone() string {
	return resolveTimezone(os.Getenv("TZ"), "/etc/localtime")
}

// LoadLocation returns the location for the IANA identifier, empty identifier
// means the local time zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}

	return time.LoadLocation(name)
}

func resolveTimezone(env string, localtimePath string) string {
	if tz := strings.TrimPrefix(env, ":"); tz != "" && tz != "Local" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}

	if target, err := os.Readlink(localtimePath); err == nil {
		target = filepath.ToSlash(target)

		if idx := strings.LastIndex(target, zoneinfoDir); idx >= 0 {
			if tz := target[idx+len(zoneinfoDir):]; tz != "" {
				return tz
			}
		}
	}

	return "UTC"
}
