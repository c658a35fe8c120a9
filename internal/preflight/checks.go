package preflight

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// minFreeBytes is the disk space floor below which the cache database is
// considered at risk.
const minFreeBytes = 1 << 30

// CheckDirectoryAccess confirms path is a directory this process can read,
// write, and traverse.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s: does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s: stat: %v", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s: not a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s: permission denied: %v", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s: read/write ok", path)}
}

// CheckDiskSpace verifies the filesystem holding the cache database has
// headroom left. A full disk degrades lookups rather than blocking start,
// so this check is optional.
func CheckDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s: statfs: %v", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minFreeBytes {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("low disk space: %s free", humanize.IBytes(free))}
	}
	return Result{Name: name, Passed: true, Optional: true, Detail: fmt.Sprintf("%s free", humanize.IBytes(free))}
}

// CheckBindAddress verifies the API bind address parses. An empty bind is
// valid and means the API server stays disabled.
func CheckBindAddress(name, bind string) Result {
	trimmed := strings.TrimSpace(bind)
	if trimmed == "" {
		return Result{Name: name, Passed: true, Detail: "api server disabled"}
	}
	host, port, err := net.SplitHostPort(trimmed)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s: %v", trimmed, err)}
	}
	if parsed, err := strconv.Atoi(port); err != nil || parsed < 0 || parsed > 65535 {
		return Result{Name: name, Detail: fmt.Sprintf("%s: invalid port %q", trimmed, port)}
	}
	if host != "" {
		if ip := net.ParseIP(host); ip == nil && strings.ContainsAny(host, " /") {
			return Result{Name: name, Detail: fmt.Sprintf("%s: invalid host %q", trimmed, host)}
		}
	}
	return Result{Name: name, Passed: true, Detail: trimmed}
}
