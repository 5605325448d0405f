package matching

import "strings"

// degreeGroups are equivalence classes of degree phrasings. A job asking for
// any term in a group is satisfied by a resume mentioning any term of the
// same group. Terms are in normalized form: "B.S." normalizes to "b s", so
// the dotted spellings appear here space-split.
var degreeGroups = [][]string{
	{"bs", "b s", "bachelor", "bachelors", "bsc", "b sc", "bachelor of science"},
	{"ms", "m s", "master", "masters", "msc", "m sc", "mba", "master of science"},
	{"phd", "ph d", "doctorate", "doctoral", "dphil", "d phil"},
}

// DegreeMatches reports whether the resume satisfies the job's degree
// requirement, either by direct containment or via an equivalence group.
func DegreeMatches(jobDegree, resumeText string) bool {
	jobNorm := normalizeCompact(jobDegree)
	resumeNorm := normalizeCompact(resumeText)
	if jobNorm == "" || resumeNorm == "" {
		return false
	}

	if strings.Contains(" "+resumeNorm+" ", " "+jobNorm+" ") {
		return true
	}

	for _, group := range degreeGroups {
		if containsAnyTerm(jobNorm, group) && containsAnyTerm(resumeNorm, group) {
			return true
		}
	}
	return false
}

// containsAnyTerm checks whole-word containment, so "ms" does not fire
// inside "systems".
func containsAnyTerm(norm string, terms []string) bool {
	padded := " " + norm + " "
	for _, term := range terms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}
