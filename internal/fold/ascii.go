package fold

import "github.com/charlievieth/dataobject/internal/bytealg"

// hasPrefixASCII tests whether the string s begins with prefix ignoring
// ASCII case.
func hasPrefixASCII(s, prefix string) bool {
	if len(s) >= len(prefix) {
		for i := 0; i < len(prefix); i++ {
			if lower(s[i]) != lower(prefix[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalASCII(s, t string) bool {
	return len(s) == len(t) && hasPrefixASCII(s, t)
}

func bruteForceIndexASCII(s, substr string) int {
	c0 := lower(substr[0])
	c1 := lower(substr[1])
	t := len(s) - len(substr) + 1
	for i := 0; i < t; i++ {
		if lower(s[i]) != c0 {
			continue
		}
		if lower(s[i+1]) != c1 {
			continue
		}
		if hasPrefixASCII(s[i+2:], substr[2:]) {
			return i
		}
	}
	return -1
}

// indexASCII returns the index of substr in s ignoring case. Both s and
// substr must be ASCII and substr must not be empty.
func indexASCII(s, substr string) int {
	n := len(substr)
	switch {
	case n == 1:
		return bytealg.IndexByteString(s, substr[0])
	case n == len(s):
		if equalASCII(s, substr) {
			return 0
		}
		return -1
	case n > len(s):
		return -1
	}
	c0 := lower(substr[0])
	c1 := lower(substr[1])
	i := 0
	t := len(s) - n + 1
	fails := 0
	for i < t {
		if lower(s[i]) != c0 {
			// IndexByte is faster than a brute force search, so use it
			// as long as we're not getting lots of false positives.
			o := bytealg.IndexByteString(s[i+1:t], c0)
			if o < 0 {
				return -1
			}
			i += o + 1
		}
		if lower(s[i+1]) == c1 && equalASCII(s[i:i+n], substr) {
			return i
		}
		i++
		fails++
		if fails > bytealg.Cutover(i) && n <= bytealg.MaxBruteForce {
			if r := bruteForceIndexASCII(s[i:], substr); r >= 0 {
				return r + i
			}
			return -1
		}
	}
	return -1
}
