package codeforces

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ProblemRef identifies a problem by external contest id and index.
type ProblemRef struct {
	ContestID    int    `json:"contestId"`
	ProblemIndex string `json:"problemIndex"`
}

var problemLinkPattern = regexp.MustCompile(`(?i)codeforces\.com/(?:problemset/problem/(\d+)/([a-z]\d*)|contest/(\d+)/problem/([a-z]\d*))`)

// ParseProblemLink extracts the contest id and upper-cased index from a problemset
// or contest problem URL.
func ParseProblemLink(link string) (ProblemRef, bool) {
	m := problemLinkPattern.FindStringSubmatch(link)
	if m == nil {
		return ProblemRef{}, false
	}

	idStr, index := m[1], m[2]
	if idStr == "" {
		idStr, index = m[3], m[4]
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return ProblemRef{}, false
	}
	return ProblemRef{ContestID: id, ProblemIndex: strings.ToUpper(index)}, true
}

// ProblemLink builds the canonical contest problem URL.
func ProblemLink(contestID int, index string) string {
	return fmt.Sprintf("https://codeforces.com/contest/%d/problem/%s", contestID, index)
}

// CompareIndex orders problem indices naturally: A < A1 < A2 < B < B2 < B10.
// Letters compare case-insensitively and digit runs compare numerically.
func CompareIndex(a, b string) int {
	ca, cb := indexChunks(a), indexChunks(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		x, y := ca[i], cb[i]
		xNum, yNum := isDigits(x), isDigits(y)
		switch {
		case xNum && yNum:
			nx, _ := strconv.Atoi(x)
			ny, _ := strconv.Atoi(y)
			if nx != ny {
				if nx < ny {
					return -1
				}
				return 1
			}
		case xNum != yNum:
			if xNum {
				return -1
			}
			return 1
		default:
			if c := strings.Compare(strings.ToUpper(x), strings.ToUpper(y)); c != 0 {
				return c
			}
		}
	}
	return len(ca) - len(cb)
}

// SortProblems sorts problems in place by CompareIndex.
func SortProblems(problems []Problem) {
	slices.SortStableFunc(problems, func(a, b Problem) int {
		return CompareIndex(a.Index, b.Index)
	})
}

// ProblemsByContest groups the catalog by contest id, each list sorted by index.
func ProblemsByContest(problems []Problem) map[int][]Problem {
	out := make(map[int][]Problem)
	for _, p := range problems {
		out[p.ContestID] = append(out[p.ContestID], p)
	}
	for id := range out {
		SortProblems(out[id])
	}
	return out
}

// ContestsByID indexes the contest list by id.
func ContestsByID(contests []Contest) map[int]Contest {
	out := make(map[int]Contest, len(contests))
	for _, c := range contests {
		out[c.ID] = c
	}
	return out
}

func indexChunks(s string) []string {
	var chunks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || unicode.IsDigit(rune(s[i])) != unicode.IsDigit(rune(s[i-1])) {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	return chunks
}

func isDigits(s string) bool {
	return s != "" && unicode.IsDigit(rune(s[0]))
}
