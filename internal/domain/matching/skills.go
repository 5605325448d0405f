package matching

import (
	"regexp"
	"strings"
)

// SkillListScore splits a comma-separated skill list and checks each skill
// against the resume as a whole-word, case-insensitive match. Word
// boundaries prevent "java" from matching inside "javascript". Returns the
// found/listed ratio in [0,1]; an empty list scores 0.
func SkillListScore(requiredSkills, resumeText string) float64 {
	skills := SplitSkills(requiredSkills)
	if len(skills) == 0 {
		return 0
	}

	found := 0
	for _, skill := range skills {
		if skillInText(skill, resumeText) {
			found++
		}
	}
	return float64(found) / float64(len(skills))
}

// SplitSkills splits on commas and trims; blank entries are dropped.
func SplitSkills(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func skillInText(skill, text string) bool {
	if skill == "" || text == "" {
		return false
	}
	// Meta characters are escaped so skills like "c++" stay literal. The
	// boundary anchors are only applied against word-character edges; "c++"
	// has no trailing word character for \b to bind to.
	pattern := `(?i)`
	if isWordChar(rune(skill[0])) {
		pattern += `\b`
	}
	pattern += regexp.QuoteMeta(skill)
	if isWordChar(rune(skill[len(skill)-1])) {
		pattern += `\b`
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
