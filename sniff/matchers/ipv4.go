package matchers

import (
	"net"
	"regexp"
)

const ipv4Pattern = `\b(?:(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\b`

// IPv4 matches hard-coded IPv4 literals. Loopback and unspecified addresses
// are not secrets and do not count.
func IPv4() Matcher {
	return &ipv4Matcher{
		r: regexp.MustCompile(ipv4Pattern),
	}
}

type ipv4Matcher struct {
	r *regexp.Regexp
}

func (m *ipv4Matcher) Match(line []byte) (bool, int, int) {
	for _, index := range m.r.FindAllIndex(line, -1) {
		ip := net.ParseIP(string(line[index[0]:index[1]]))
		if ip == nil || ip.To4() == nil {
			continue
		}
		if ip.IsLoopback() || ip.IsUnspecified() {
			continue
		}

		return true, index[0], index[1]
	}

	return false, 0, 0
}
