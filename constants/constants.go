package constants

import (
	"os"
	"strconv"
	"time"
)

// DefaultBlockCount is used by the HTTP API when a request asks for a
// distribution without picking a block count or frequency.
const DefaultBlockCount = 100

const MaxBodyBytes = 1 << 20

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetDownloadTimeout() time.Duration {
	s := os.Getenv("DOWNLOAD_TIMEOUT_SEC")
	if s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 15 * time.Second
}
