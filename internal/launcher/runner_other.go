//go:build !unix && !windows

package launcher

func interruptedBy(err error) bool { return false }
