package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// localIDPrefix зарезервированный префикс ID записей Tier 1.
// Платформа и seed датасет таких ID не выдают, поэтому локально созданные
// записи никогда не конфликтуют по ID с записями других уровней.
const localIDPrefix = "local-"

// NewLocalID минтит ID для записи, созданной при недоступности платформы
func NewLocalID() string {
	return fmt.Sprintf("%s%d-%s", localIDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// IsLocalID возвращает true для ID, сминченных offline
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}
