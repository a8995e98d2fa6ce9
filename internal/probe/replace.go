package probe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	replaceProgressRe = regexp.MustCompile(`^(\d+)\.(\d)% done`)
	replaceErrsRe     = regexp.MustCompile(`(\d+) write errs, (\d+) uncorr\. read errs`)
)

// parseReplaceStatus decodes the one-shot status line of the replace
// helper. The line takes one of these shapes:
//
//	Never started
//	37.5% done, 0 write errs, 0 uncorr. read errs
//	Started on 25.Aug 10:04:56, finished on 25.Aug 11:10:32, 0 write errs, ...
//	Started on ..., canceled on ... at 12.3%, ...
//	Started on ..., suspended on ... at 12.3%, ...
func parseReplaceStatus(out string) (ReplaceStatus, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}

	var st ReplaceStatus
	switch {
	case line == "Never started":
		st.State = ReplaceNeverStarted
		return st, nil

	case replaceProgressRe.MatchString(line):
		st.State = ReplaceStarted
		m := replaceProgressRe.FindStringSubmatch(line)
		whole, _ := strconv.Atoi(m[1])
		tenth, _ := strconv.Atoi(m[2])
		st.ProgressPermille = whole*10 + tenth

	case strings.Contains(line, ", finished on "):
		st.State = ReplaceFinished

	case strings.Contains(line, ", canceled on "):
		st.State = ReplaceCanceled

	case strings.Contains(line, ", suspended on "):
		st.State = ReplaceSuspended

	default:
		return st, fmt.Errorf("unrecognized replace status %q", line)
	}

	if m := replaceErrsRe.FindStringSubmatch(line); m != nil {
		st.WriteErrors, _ = strconv.ParseUint(m[1], 10, 64)
		st.UncorrectableReadErrors, _ = strconv.ParseUint(m[2], 10, 64)
	}
	return st, nil
}
