package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex org_01HZX3K4QF0V8T2M9Y7R6W5E4D
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short ID with a prefix.
// Total length is capped at 12 characters, e.g., `RDXYZ12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.NewReplacer("-", "", "_", "").Replace(id)

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(prefix + id)
}

const (
	// Prefixes for all entities

	UUID_PREFIX_ORGANIZATION           = "org"
	UUID_PREFIX_APP_USER               = "appuser"
	UUID_PREFIX_MEMBERSHIP             = "member"
	UUID_PREFIX_BRANCH                 = "branch"
	UUID_PREFIX_PRODUCT                = "prod"
	UUID_PREFIX_REDEMPTION             = "redeem"
	UUID_PREFIX_PUSH_NOTIFICATION      = "push"
	UUID_PREFIX_NOTIFICATION_RECIPIENT = "recip"
	UUID_PREFIX_PERMISSION             = "perm"
	UUID_PREFIX_USER                   = "user"
)

const (
	SHORT_ID_PREFIX_REDEMPTION = "RD"
)
